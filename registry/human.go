// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"math"

	"github.com/bitmark-inc/soulbound/fault"
	"github.com/bitmark-inc/soulbound/sbt"
	"github.com/bitmark-inc/soulbound/util"
)

// ClassSet - the issuer and classes that together prove personhood
type ClassSet struct {
	Issuer  string        `json:"issuer"`
	Classes []sbt.ClassId `json:"classes"`
}

// HumanCallArgs - arguments passed on to the target of a human call
type HumanCallArgs struct {
	Caller   string      `json:"caller"`
	IAHProof []sbt.Proof `json:"iah_proof,omitempty"`
	Payload  string      `json:"payload"`
}

// HumanCall - a call forwarded to a contract after the caller passed
// the personhood check
type HumanCall struct {
	Contract string        `json:"contract"`
	Function string        `json:"function"`
	Args     HumanCallArgs `json:"args"`
}

func validateClassSet(issuer string, classes []sbt.ClassId) error {
	if err := sbt.ValidateAccount(issuer); nil != err {
		return err
	}
	if 0 == len(classes) {
		return fault.EmptyBatch
	}
	for _, c := range classes {
		if 0 == c {
			return fault.ClassIsZero
		}
	}
	return nil
}

// issuer ++ count ++ classes
func packClassSet(issuer string, classes []sbt.ClassId) []byte {
	p := util.Packed{}
	p = p.AppendString(issuer)
	p = p.AppendUint64(uint64(len(classes)))
	for _, c := range classes {
		p = p.AppendUint64(uint64(c))
	}
	return p
}

func unpackClassSet(buffer []byte) ClassSet {
	u := util.NewUnpacker(buffer)
	set := ClassSet{
		Issuer: u.String(),
	}
	n := u.Uint64()
	for i := uint64(0); i < n && nil == u.Err(); i += 1 {
		set.Classes = append(set.Classes, sbt.ClassId(u.Uint64()))
	}
	if !u.Done() {
		fault.Corruptf("iah class set: %x", buffer)
	}
	return set
}

// ClassSet - current personhood requirement, empty if not configured
func (r *Registry) ClassSet() ClassSet {
	r.RLock()
	defer r.RUnlock()
	return r.classSet()
}

func (r *Registry) classSet() ClassSet {
	buffer := r.pools.Registry.Get(iahKey)
	if nil == buffer {
		return ClassSet{Classes: []sbt.ClassId{}}
	}
	return unpackClassSet(buffer)
}

// IsHuman - proof tokens if account holds every required class
//
// the proof is all or nothing: a missing or expired class, a ban or a
// blacklist flag give an empty result
func (r *Registry) IsHuman(account string, now uint64) []sbt.Proof {
	r.RLock()
	defer r.RUnlock()
	return r.isHuman(account, now)
}

func (r *Registry) isHuman(account string, now uint64) []sbt.Proof {
	empty := []sbt.Proof{}

	pools := r.pools
	if isBanned(pools.Banned, account) || sbt.Blacklisted == accountFlag(pools.Flags, account) {
		return empty
	}

	set := r.classSet()
	if 0 == len(set.Classes) {
		return empty
	}
	issuer, ok := issuerId(pools.Issuers, set.Issuer)
	if !ok {
		return empty
	}

	tokens := make([]sbt.TokenId, 0, len(set.Classes))
	for _, class := range set.Classes {
		value := pools.Balances.Get(balanceKey(account, issuer, class))
		if nil == value {
			return empty
		}
		token := tokenIdValue(value)
		data := r.tokenData(pools.IssuerTokens, issuer, token)
		if data.Metadata.Current().Expired(now) {
			return empty
		}
		tokens = append(tokens, token)
	}
	return []sbt.Proof{{
		Issuer: set.Issuer,
		Tokens: tokens,
	}}
}

// IsHumanCall - prepare a call to contract on behalf of a human caller
func (r *Registry) IsHumanCall(call Call, contract string, function string, payload string) (*HumanCall, error) {
	r.RLock()
	defer r.RUnlock()

	proof := r.isHuman(call.Caller, call.Now)
	if 0 == len(proof) {
		return nil, fault.CallerIsNotHuman
	}
	return &HumanCall{
		Contract: contract,
		Function: function,
		Args: HumanCallArgs{
			Caller:   call.Caller,
			IAHProof: proof,
			Payload:  payload,
		},
	}, nil
}

// IsHumanCallLock - as IsHumanCall and also block soul transfers of
// the caller for lockDuration milliseconds
//
// an existing lock that ends later is kept
func (r *Registry) IsHumanCallLock(call Call, contract string, function string, payload string, lockDuration uint64, withProof bool) (*HumanCall, error) {
	var result *HumanCall
	err := r.execute("is_human_call_lock", call, func(u *update) error {
		proof := r.isHuman(call.Caller, call.Now)
		if 0 == len(proof) {
			return fault.CallerIsNotHuman
		}

		until := uint64(math.MaxUint64)
		if lockDuration < until-call.Now {
			until = call.Now + lockDuration
		}
		key := accountKey(call.Caller)
		if current, ok := u.trx.GetN(r.pools.TransferLocks, key); !ok || current < until {
			u.trx.PutN(r.pools.TransferLocks, key, until)
		}

		result = &HumanCall{
			Contract: contract,
			Function: function,
			Args: HumanCallArgs{
				Caller:  call.Caller,
				Payload: payload,
			},
		}
		if withProof {
			result.Args.IAHProof = proof
		}
		return nil
	})
	if nil != err {
		return nil, err
	}
	return result, nil
}

// TransferLock - unix ms until which the account cannot start a soul
// transfer, zero if not locked
func (r *Registry) TransferLock(account string) uint64 {
	r.RLock()
	defer r.RUnlock()
	return count(r.pools.TransferLocks, accountKey(account))
}
