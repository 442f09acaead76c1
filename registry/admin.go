// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/soulbound/fault"
	"github.com/bitmark-inc/soulbound/sbt"
)

func (u *update) assertAuthority() error {
	if u.call.Caller != u.r.Authority() {
		return fault.NotAnAdmin
	}
	return nil
}

// ChangeAdmin - hand the authority to another account
func (r *Registry) ChangeAdmin(call Call, admin string) error {
	return r.execute("change_admin", call, func(u *update) error {
		if err := u.assertAuthority(); nil != err {
			return err
		}
		if err := sbt.ValidateAccount(admin); nil != err {
			return err
		}
		u.trx.Put(r.pools.Registry, authorityKey, []byte(admin))
		r.log.Infof("authority changed from: %q to: %q", call.Caller, admin)
		return nil
	})
}

// AddFlagger - allow accounts to flag and unflag
func (r *Registry) AddFlagger(call Call, accounts []string) error {
	return r.execute("admin_add_authorized_flagger", call, func(u *update) error {
		if err := u.assertAuthority(); nil != err {
			return err
		}
		if 0 == len(accounts) {
			return fault.EmptyBatch
		}
		for _, a := range accounts {
			if err := sbt.ValidateAccount(a); nil != err {
				return err
			}
			u.trx.Put(r.pools.Flaggers, accountKey(a), present)
		}
		return nil
	})
}

// RemoveFlagger - revoke flagging rights
//
// removing an account that is not a flagger is not an error
func (r *Registry) RemoveFlagger(call Call, accounts []string) error {
	return r.execute("admin_remove_authorized_flagger", call, func(u *update) error {
		if err := u.assertAuthority(); nil != err {
			return err
		}
		for _, a := range accounts {
			u.trx.Delete(r.pools.Flaggers, accountKey(a))
		}
		return nil
	})
}

// Flaggers - accounts allowed to flag, excluding the authority
func (r *Registry) Flaggers() []string {
	r.RLock()
	defer r.RUnlock()

	flaggers := make([]string, 0)
	r.pools.Flaggers.NewFetchCursor().Map(func(key []byte, value []byte) error {
		flaggers = append(flaggers, string(key))
		return nil
	})
	return flaggers
}

// SetClassSet - replace the issuer and classes that prove personhood
func (r *Registry) SetClassSet(call Call, issuer string, classes []sbt.ClassId) error {
	return r.execute("admin_set_iah_classes", call, func(u *update) error {
		if err := u.assertAuthority(); nil != err {
			return err
		}
		if err := validateClassSet(issuer, classes); nil != err {
			return err
		}
		u.trx.Put(r.pools.Registry, iahKey, packClassSet(issuer, classes))
		r.log.Infof("iah class set: %q %v", issuer, classes)
		return nil
	})
}
