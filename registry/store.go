// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"fmt"

	"github.com/bitmark-inc/soulbound/fault"
	"github.com/bitmark-inc/soulbound/sbt"
	"github.com/bitmark-inc/soulbound/storage"
)

// read a token, false if it does not exist
func lookupToken(h storage.Handle, issuer sbt.IssuerId, token sbt.TokenId) (sbt.TokenData, bool) {
	value := h.Get(tokenKey(issuer, token))
	if nil == value {
		return sbt.TokenData{}, false
	}
	data, err := sbt.UnpackTokenData(value)
	if nil != err {
		fault.Corruptf("token: %d/%d  error: %s", issuer, token, err)
	}
	return data, true
}

// read a token that an index refers to
func (r *Registry) tokenData(h storage.Handle, issuer sbt.IssuerId, token sbt.TokenId) sbt.TokenData {
	data, ok := lookupToken(h, issuer, token)
	if !ok {
		fault.Corruptf("balance index refers to missing token: %d/%d", issuer, token)
	}
	return data
}

func (u *update) putToken(issuer sbt.IssuerId, token sbt.TokenId, data sbt.TokenData) {
	u.trx.Put(u.r.pools.IssuerTokens, tokenKey(issuer, token), data.Pack())
}

// create a token together with its balance entry and supply counts
func (u *update) insertToken(issuer sbt.IssuerId, token sbt.TokenId, data sbt.TokenData) {
	class := data.Metadata.Current().Class
	u.putToken(issuer, token, data)
	u.trx.Put(u.r.pools.Balances, balanceKey(data.Owner, issuer, class), tokenIdBytes(token))
	u.addSupply(data.Owner, issuer, class)
}

// delete a token together with its balance entry and supply counts
func (u *update) deleteToken(issuer sbt.IssuerId, token sbt.TokenId, data sbt.TokenData) {
	class := data.Metadata.Current().Class
	u.trx.Delete(u.r.pools.IssuerTokens, tokenKey(issuer, token))
	u.trx.Delete(u.r.pools.Balances, balanceKey(data.Owner, issuer, class))
	u.removeSupply(data.Owner, issuer, class)
}

// change the owner of a token and move its balance entry
//
// the owner supply count is migrated separately per issuer; when the
// recipient already holds the class the source token is burned instead
// and false is returned
func (u *update) moveToken(issuer sbt.IssuerId, class sbt.ClassId, token sbt.TokenId, to string) bool {
	pools := u.r.pools
	data := u.r.tokenData(pools.IssuerTokens, issuer, token)
	if data.Metadata.Current().Class != class {
		fault.Corruptf("token: %d/%d  class: %d  indexed as class: %d", issuer, token, data.Metadata.Current().Class, class)
	}

	toKey := balanceKey(to, issuer, class)
	if u.trx.Has(pools.Balances, toKey) {
		u.r.log.Warnf("move: %d/%d  %q already holds class: %d  burned", issuer, token, to, class)
		u.deleteToken(issuer, token, data)
		return false
	}

	u.trx.Delete(pools.Balances, balanceKey(data.Owner, issuer, class))
	u.trx.Put(pools.Balances, toKey, tokenIdBytes(token))
	data.Owner = to
	u.putToken(issuer, token, data)
	return true
}

// fail if to holds a class that any balance entry under prefix holds
func (u *update) classConflict(prefix []byte, to string) error {
	pools := u.r.pools
	return pools.Balances.NewFetchCursor().Prefix(prefix).Map(func(key []byte, value []byte) error {
		issuer, class := splitBalanceKey(key)
		if u.trx.Has(pools.Balances, balanceKey(to, issuer, class)) {
			return fault.ConsistencyError(fmt.Sprintf("%s already has SBT of the same issuer and class: %d", to, class))
		}
		return nil
	})
}
