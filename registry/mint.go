// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/bitmark-inc/soulbound/events"
	"github.com/bitmark-inc/soulbound/fault"
	"github.com/bitmark-inc/soulbound/sbt"
)

// Mint - create tokens for owners, caller must be an issuer
//
// token ids are assigned in the order of the request
func (r *Registry) Mint(call Call, spec []sbt.TokenSpec, memo *string) ([]sbt.TokenId, error) {
	var tokens []sbt.TokenId
	err := r.execute("sbt_mint", call, func(u *update) error {
		issuer, err := u.callerIssuer()
		if nil != err {
			return err
		}
		tokens, err = u.mint(call.Caller, issuer, spec, memo)
		return err
	})
	if nil != err {
		return nil, err
	}
	return tokens, nil
}

// MintCost - deposit required for minting n tokens
func (r *Registry) MintCost(n uint64) *uint256.Int {
	return new(uint256.Int).Mul(r.mintCost, uint256.NewInt(n))
}

func (u *update) mint(issuerAccount string, issuer sbt.IssuerId, spec []sbt.TokenSpec, memo *string) ([]sbt.TokenId, error) {
	if 0 == len(spec) {
		return nil, fault.EmptyBatch
	}

	n := uint64(0)
	for _, s := range spec {
		n += uint64(len(s.Metadata))
	}
	if 0 == n {
		return nil, fault.EmptyBatch
	}
	if err := requireDeposit(u.call, u.r.MintCost(n)); nil != err {
		return nil, err
	}

	pools := u.r.pools
	last, _ := u.trx.GetN(pools.NextTokenId, issuerKey(issuer))

	tokens := make([]sbt.TokenId, 0, n)
	minted := make(map[string][]sbt.TokenId)
	for _, s := range spec {
		if err := sbt.ValidateAccount(s.Owner); nil != err {
			return nil, err
		}
		if u.trx.Has(pools.Banned, accountKey(s.Owner)) {
			return nil, fault.ConsistencyError(fmt.Sprintf("account %s is banned", s.Owner))
		}
		for _, metadata := range s.Metadata {
			if err := metadata.Validate(); nil != err {
				return nil, err
			}
			if u.trx.Has(pools.Balances, balanceKey(s.Owner, issuer, metadata.Class)) {
				return nil, fault.ExistsError(fmt.Sprintf("%s already has SBT of class %d", s.Owner, metadata.Class))
			}

			last += 1
			token := sbt.TokenId(last)
			u.insertToken(issuer, token, sbt.TokenData{
				Owner:    s.Owner,
				Metadata: sbt.Versioned(metadata),
			})
			tokens = append(tokens, token)
			minted[s.Owner] = append(minted[s.Owner], token)
		}
	}
	u.trx.PutN(pools.NextTokenId, issuerKey(issuer), last)

	u.emit(events.Mint(issuerAccount, minted, memo))
	return tokens, nil
}
