// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/soulbound/continuation"
	"github.com/bitmark-inc/soulbound/events"
	"github.com/bitmark-inc/soulbound/fault"
	"github.com/bitmark-inc/soulbound/sbt"
	"github.com/bitmark-inc/soulbound/storage"
)

// Progress - result of one call of a batched operation
type Progress struct {
	Moved     int  `json:"moved"`
	Completed bool `json:"completed"`
}

// SoulTransfer - move up to limit of the caller's tokens to recipient
//
// the first call fails if the recipient already holds a class the
// caller holds, otherwise it bans the caller and settles the account
// flag; a class the recipient gains later is burned from the caller
// when reached; the transfer is complete once a call returns
// Completed, a zero limit selects the default batch size
func (r *Registry) SoulTransfer(call Call, recipient string, limit int, memo *string) (Progress, error) {
	var progress Progress
	err := r.execute("sbt_soul_transfer", call, func(u *update) error {
		var err error
		progress, err = u.soulTransfer(recipient, limit, memo)
		return err
	})
	if nil != err {
		return Progress{}, err
	}
	return progress, nil
}

func (u *update) soulTransfer(recipient string, limit int, memo *string) (Progress, error) {
	r := u.r
	pools := r.pools
	owner := u.call.Caller

	if err := sbt.ValidateAccount(recipient); nil != err {
		return Progress{}, err
	}
	if owner == recipient {
		return Progress{}, fault.FromAndToAreEqual
	}
	limit, err := r.batch(limit)
	if nil != err {
		return Progress{}, err
	}

	key := accountKey(owner)
	var machine *continuation.Machine
	var record continuation.SoulTransfer
	var start []byte

	if value := u.trx.Get(pools.SoulTransfers, key); nil != value {
		record, err = continuation.UnpackSoulTransfer(value)
		if nil != err {
			fault.Corruptf("soul transfer of: %q  error: %s", owner, err)
		}
		if record.Recipient != recipient {
			return Progress{}, fault.SoulTransferRecipient
		}
		machine = continuation.Resume()
		start = after(balanceKey(owner, record.Last.Issuer, record.Last.Class))
	} else {
		if lock, ok := u.trx.GetN(pools.TransferLocks, key); ok && lock > u.call.Now {
			return Progress{}, fault.TransferLocked
		}
		if u.trx.Has(pools.Banned, key) {
			return Progress{}, fault.SoulTransferFromBanned
		}
		machine = continuation.Start()
		record.Recipient = recipient
		start = ownerPrefix(owner)
	}

	if u.trx.Has(pools.Banned, accountKey(recipient)) {
		return Progress{}, fault.RecipientIsBanned
	}

	if !machine.Resumed() {
		if err := u.classConflict(ownerPrefix(owner), recipient); nil != err {
			return Progress{}, err
		}
		u.ban(owner)
		if err := u.propagateFlag(owner, recipient); nil != err {
			return Progress{}, err
		}
	}

	entries, err := pools.Balances.NewFetchCursor().Prefix(ownerPrefix(owner)).Seek(start).Fetch(limit + 1)
	if nil != err {
		return Progress{}, err
	}
	take, exhausted, err := machine.Step(len(entries), limit)
	if nil != err {
		return Progress{}, err
	}

	current := sbt.IssuerId(0)
	n := 0
	var burned []sbt.TokenId
	flush := func() {
		u.migrateSupply(owner, recipient, current, n)
		if 0 != len(burned) {
			u.emit(events.Burn(r.issuerAccount(current), burned, nil))
		}
		n = 0
		burned = nil
	}

	for _, e := range entries[:take] {
		issuer, class := splitBalanceKey(e.Key)
		if issuer != current {
			flush()
			current = issuer
		}
		token := tokenIdValue(e.Value)
		if u.moveToken(issuer, class, token, recipient) {
			n += 1
		} else {
			burned = append(burned, token)
		}
		record.Last = continuation.TransferPoint{
			Issuer: issuer,
			Class:  class,
		}
	}
	flush()

	if exhausted {
		u.trx.Delete(pools.SoulTransfers, key)
		announce, err := machine.Finish(true)
		if nil != err {
			return Progress{}, err
		}
		if announce {
			u.emit(events.SoulTransfer(owner, recipient, memo))
		}
	} else {
		if err := machine.Pause(); nil != err {
			return Progress{}, err
		}
		u.trx.Put(pools.SoulTransfers, key, record.Pack())
	}

	if err := u.requireStorageDeposit(); nil != err {
		return Progress{}, err
	}

	r.log.Debugf("soul transfer: %q -> %q  moved: %d  completed: %t", owner, recipient, take, exhausted)
	return Progress{
		Moved:     take,
		Completed: exhausted,
	}, nil
}

// true while a soul transfer from account has not completed
func transferring(h storage.Handle, account string) bool {
	return h.Has(accountKey(account))
}
