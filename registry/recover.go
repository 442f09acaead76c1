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
)

// Recover - the calling issuer moves up to limit of its tokens from
// one account to another
//
// the source is not banned; the deposit must cover any storage growth
func (r *Registry) Recover(call Call, from string, to string, limit int, memo *string) (Progress, error) {
	var progress Progress
	err := r.execute("sbt_recover", call, func(u *update) error {
		issuer, err := u.callerIssuer()
		if nil != err {
			return err
		}
		progress, err = u.recover(issuer, from, to, limit, memo)
		return err
	})
	if nil != err {
		return Progress{}, err
	}
	return progress, nil
}

func (u *update) recover(issuer sbt.IssuerId, from string, to string, limit int, memo *string) (Progress, error) {
	r := u.r
	pools := r.pools

	if err := sbt.ValidateAccount(from); nil != err {
		return Progress{}, err
	}
	if err := sbt.ValidateAccount(to); nil != err {
		return Progress{}, err
	}
	if from == to {
		return Progress{}, fault.FromAndToAreEqual
	}
	limit, err := r.batch(limit)
	if nil != err {
		return Progress{}, err
	}
	if u.trx.Has(pools.Banned, accountKey(to)) {
		return Progress{}, fault.RecipientIsBanned
	}

	key := recoveryKey(issuer, from)
	prefix := ownerIssuerKey(from, issuer)

	var machine *continuation.Machine
	var record continuation.Recovery
	start := prefix

	if value := u.trx.Get(pools.Recoveries, key); nil != value {
		record, err = continuation.UnpackRecovery(value)
		if nil != err {
			fault.Corruptf("recovery of: %q  issuer: %d  error: %s", from, issuer, err)
		}
		if record.Recipient != to {
			return Progress{}, fault.RecoveryRecipient
		}
		machine = continuation.Resume()
		start = after(balanceKey(from, issuer, record.Last.Class))
	} else {
		if err := u.classConflict(prefix, to); nil != err {
			return Progress{}, err
		}
		machine = continuation.Start()
		record.Recipient = to
	}

	entries, err := pools.Balances.NewFetchCursor().Prefix(prefix).Seek(start).Fetch(limit + 1)
	if nil != err {
		return Progress{}, err
	}
	take, exhausted, err := machine.Step(len(entries), limit)
	if nil != err {
		return Progress{}, err
	}

	n := 0
	var burned []sbt.TokenId
	for _, e := range entries[:take] {
		i, class := splitBalanceKey(e.Key)
		if i != issuer {
			fault.Corruptf("recovery for issuer: %d found issuer: %d", issuer, i)
		}
		token := tokenIdValue(e.Value)
		if u.moveToken(issuer, class, token, to) {
			n += 1
		} else {
			burned = append(burned, token)
		}
		record.Last = continuation.RecoveryPoint{
			Class: class,
		}
	}
	u.migrateSupply(from, to, issuer, n)
	if 0 != len(burned) {
		u.emit(events.Burn(u.call.Caller, burned, nil))
	}

	if exhausted {
		u.trx.Delete(pools.Recoveries, key)
		announce, err := machine.Finish(false)
		if nil != err {
			return Progress{}, err
		}
		if announce {
			u.emit(events.Recover(u.call.Caller, from, to, memo))
		}
	} else {
		if err := machine.Pause(); nil != err {
			return Progress{}, err
		}
		u.trx.Put(pools.Recoveries, key, record.Pack())
	}

	if err := u.requireStorageDeposit(); nil != err {
		return Progress{}, err
	}

	r.log.Debugf("recover: issuer: %d  %q -> %q  moved: %d  completed: %t", issuer, from, to, take, exhausted)
	return Progress{
		Moved:     take,
		Completed: exhausted,
	}, nil
}
