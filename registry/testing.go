// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/soulbound/fault"
	"github.com/bitmark-inc/soulbound/sbt"
)

// calls below are only available on a test network

func (u *update) assertTesting() error {
	if !u.r.isTesting() {
		return fault.MustBeTestnet
	}
	return nil
}

// an empty minter list lets anyone mint
func (u *update) assertMinter() error {
	pools := u.r.pools
	if u.trx.Has(pools.Minters, accountKey(u.call.Caller)) {
		return nil
	}
	empty := true
	pools.Minters.NewFetchCursor().Map(func(key []byte, value []byte) error {
		empty = false
		return errStop
	})
	if empty {
		return nil
	}
	return fault.NotAnAdminMinter
}

// AddMinter - allow an account to use the testing mint and renew
func (r *Registry) AddMinter(call Call, minter string) error {
	return r.execute("admin_add_minter", call, func(u *update) error {
		if err := u.assertAuthority(); nil != err {
			return err
		}
		if err := sbt.ValidateAccount(minter); nil != err {
			return err
		}
		u.trx.Put(r.pools.Minters, accountKey(minter), present)
		return nil
	})
}

// TestingAddIssuer - register an issuer without the authority
func (r *Registry) TestingAddIssuer(call Call, issuer string) (bool, error) {
	added := false
	err := r.execute("testing_add_sbt_issuer", call, func(u *update) error {
		if err := u.assertTesting(); nil != err {
			return err
		}
		var err error
		added, err = u.addIssuer(issuer)
		return err
	})
	return added, err
}

// TestingMint - mint on behalf of a registered issuer
func (r *Registry) TestingMint(call Call, issuer string, spec []sbt.TokenSpec) ([]sbt.TokenId, error) {
	var tokens []sbt.TokenId
	err := r.execute("testing_sbt_mint", call, func(u *update) error {
		if err := u.assertMinter(); nil != err {
			return err
		}
		if err := u.assertTesting(); nil != err {
			return err
		}
		id, ok := issuerId(r.pools.Issuers, issuer)
		if !ok {
			return fault.UnknownIssuer
		}
		var err error
		tokens, err = u.mint(issuer, id, spec, nil)
		return err
	})
	if nil != err {
		return nil, err
	}
	return tokens, nil
}

// TestingRenew - renew on behalf of a registered issuer
func (r *Registry) TestingRenew(call Call, issuer string, tokens []sbt.TokenId, expiresAt uint64) error {
	return r.execute("testing_sbt_renew", call, func(u *update) error {
		if err := u.assertMinter(); nil != err {
			return err
		}
		if err := u.assertTesting(); nil != err {
			return err
		}
		id, ok := issuerId(r.pools.Issuers, issuer)
		if !ok {
			return fault.UnknownIssuer
		}
		return u.renew(issuer, id, tokens, expiresAt)
	})
}
