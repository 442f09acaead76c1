// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"encoding/binary"

	"github.com/bitmark-inc/soulbound/fault"
	"github.com/bitmark-inc/soulbound/sbt"
	"github.com/bitmark-inc/soulbound/storage"
)

// AddIssuer - register an issuer account, authority only
//
// returns false if the account was already registered
func (r *Registry) AddIssuer(call Call, issuer string) (bool, error) {
	added := false
	err := r.execute("admin_add_sbt_issuer", call, func(u *update) error {
		if err := u.assertAuthority(); nil != err {
			return err
		}
		var err error
		added, err = u.addIssuer(issuer)
		return err
	})
	return added, err
}

func (u *update) addIssuer(issuer string) (bool, error) {
	if err := sbt.ValidateAccount(issuer); nil != err {
		return false, err
	}
	pools := u.r.pools
	if u.trx.Has(pools.Issuers, accountKey(issuer)) {
		return false, nil
	}

	next, ok := u.trx.GetN(pools.Registry, nextIssuerKey)
	if !ok || 0 == next {
		fault.Corruptf("next issuer id is not set")
	}
	id := sbt.IssuerId(next)
	u.trx.Put(pools.Issuers, accountKey(issuer), issuerKey(id))
	u.trx.Put(pools.IssuerAccounts, issuerKey(id), accountKey(issuer))
	u.trx.PutN(pools.Registry, nextIssuerKey, next+1)

	u.r.log.Infof("added issuer: %q  id: %d", issuer, id)
	return true, nil
}

// look up an issuer id, false if not registered
func issuerId(h storage.Handle, issuer string) (sbt.IssuerId, bool) {
	value := h.Get(accountKey(issuer))
	if nil == value {
		return 0, false
	}
	if issuerIdSize != len(value) {
		fault.Corruptf("issuer: %q has id: %x", issuer, value)
	}
	return sbt.IssuerId(binary.BigEndian.Uint32(value)), true
}

// the account of a registered issuer id
func (r *Registry) issuerAccount(id sbt.IssuerId) string {
	account := r.pools.IssuerAccounts.Get(issuerKey(id))
	if nil == account {
		fault.Corruptf("issuer id: %d has no account", id)
	}
	return string(account)
}

// the caller must be a registered issuer
func (u *update) callerIssuer() (sbt.IssuerId, error) {
	id, ok := issuerId(u.r.pools.Issuers, u.call.Caller)
	if !ok {
		return 0, fault.NotAnIssuer
	}
	return id, nil
}

// Issuers - registered issuer accounts in registration order
func (r *Registry) Issuers() []string {
	r.RLock()
	defer r.RUnlock()

	issuers := make([]string, 0)
	cursor := r.pools.IssuerAccounts.NewFetchCursor()
	err := cursor.Map(func(key []byte, value []byte) error {
		issuers = append(issuers, string(value))
		return nil
	})
	if nil != err {
		r.log.Errorf("issuers: error: %s", err)
	}
	return issuers
}
