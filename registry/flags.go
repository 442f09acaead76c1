// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/soulbound/events"
	"github.com/bitmark-inc/soulbound/fault"
	"github.com/bitmark-inc/soulbound/sbt"
	"github.com/bitmark-inc/soulbound/storage"
)

var present = []byte{1}

func isBanned(h storage.Handle, account string) bool {
	return h.Has(accountKey(account))
}

func accountFlag(h storage.Handle, account string) sbt.AccountFlag {
	value := h.Get(accountKey(account))
	if nil == value {
		return sbt.NoFlag
	}
	if 1 != len(value) {
		fault.Corruptf("flag of: %q is: %x", account, value)
	}
	return sbt.AccountFlag(value[0])
}

func (u *update) ban(account string) {
	u.trx.Put(u.r.pools.Banned, accountKey(account), present)
}

func (u *update) setFlag(account string, flag sbt.AccountFlag) {
	u.trx.Put(u.r.pools.Flags, accountKey(account), []byte{byte(flag)})
}

// IsBanned - true if the account can no longer receive tokens
func (r *Registry) IsBanned(account string) bool {
	r.RLock()
	defer r.RUnlock()
	return isBanned(r.pools.Banned, account)
}

// AccountFlagged - the flag of an account, NoFlag if not flagged
func (r *Registry) AccountFlagged(account string) sbt.AccountFlag {
	r.RLock()
	defer r.RUnlock()
	return accountFlag(r.pools.Flags, account)
}

// the authority is always a flagger
func (u *update) assertFlagger() error {
	caller := u.call.Caller
	if caller == u.r.Authority() || u.trx.Has(u.r.pools.Flaggers, accountKey(caller)) {
		return nil
	}
	return fault.NotAuthorizedFlagger
}

// Flag - set a flag on accounts, replacing any previous flag
func (r *Registry) Flag(call Call, flag sbt.AccountFlag, accounts []string) error {
	return r.execute("admin_flag_accounts", call, func(u *update) error {
		if err := u.assertFlagger(); nil != err {
			return err
		}
		if sbt.Blacklisted != flag && sbt.Verified != flag {
			return fault.UnknownFlag
		}
		if 0 == len(accounts) {
			return fault.EmptyBatch
		}
		for _, a := range accounts {
			if err := sbt.ValidateAccount(a); nil != err {
				return err
			}
			if u.trx.Has(r.pools.Banned, accountKey(a)) {
				return fault.ConsistencyError("account " + a + " is banned")
			}
			u.setFlag(a, flag)
		}
		u.emit(events.Flag(flag, accounts))
		return nil
	})
}

// Unflag - remove the flag of accounts
func (r *Registry) Unflag(call Call, accounts []string) error {
	return r.execute("admin_unflag_accounts", call, func(u *update) error {
		if err := u.assertFlagger(); nil != err {
			return err
		}
		if 0 == len(accounts) {
			return fault.EmptyBatch
		}
		for _, a := range accounts {
			if !u.trx.Has(r.pools.Flags, accountKey(a)) {
				return fault.NotFoundError("account " + a + " has no flag")
			}
			u.trx.Delete(r.pools.Flags, accountKey(a))
		}
		u.emit(events.Unflag(accounts))
		return nil
	})
}

// inherit or check the owner's flag when a soul transfer starts
func (u *update) propagateFlag(owner string, recipient string) error {
	pools := u.r.pools
	from := accountFlag(pools.Flags, owner)
	if sbt.NoFlag == from {
		return nil
	}
	to := accountFlag(pools.Flags, recipient)
	switch {
	case sbt.NoFlag == to:
		u.setFlag(recipient, from)
	case sbt.Blacklisted == from && sbt.Verified == to:
		return fault.TransferBlacklisted
	case sbt.Verified == from && sbt.Blacklisted == to:
		return fault.TransferVerified
	}
	return nil
}
