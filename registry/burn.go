// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/soulbound/continuation"
	"github.com/bitmark-inc/soulbound/events"
	"github.com/bitmark-inc/soulbound/sbt"
)

// BurnAll - delete up to limit of the caller's tokens
//
// burned entries leave the index so every call starts from the
// caller's first remaining token; returns true once none remain
func (r *Registry) BurnAll(call Call, limit int) (bool, error) {
	completed := false
	err := r.execute("sbt_burn_all", call, func(u *update) error {
		var err error
		completed, err = u.burnAll(limit)
		return err
	})
	if nil != err {
		return false, err
	}
	return completed, nil
}

func (u *update) burnAll(limit int) (bool, error) {
	r := u.r
	pools := r.pools
	owner := u.call.Caller

	limit, err := r.batch(limit)
	if nil != err {
		return false, err
	}

	entries, err := pools.Balances.NewFetchCursor().Prefix(ownerPrefix(owner)).Fetch(limit + 1)
	if nil != err {
		return false, err
	}
	take, exhausted, err := continuation.Start().Step(len(entries), limit)
	if nil != err {
		return false, err
	}

	current := sbt.IssuerId(0)
	var burned []sbt.TokenId
	flush := func() {
		if 0 != len(burned) {
			u.emit(events.Burn(r.issuerAccount(current), burned, nil))
		}
		burned = nil
	}

	for _, e := range entries[:take] {
		issuer, _ := splitBalanceKey(e.Key)
		if issuer != current {
			flush()
			current = issuer
		}
		token := tokenIdValue(e.Value)
		u.deleteToken(issuer, token, r.tokenData(pools.IssuerTokens, issuer, token))
		burned = append(burned, token)
	}
	flush()

	r.log.Debugf("burn all: %q  burned: %d  completed: %t", owner, take, exhausted)
	return exhausted, nil
}
