// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"fmt"

	"github.com/bitmark-inc/soulbound/events"
	"github.com/bitmark-inc/soulbound/fault"
	"github.com/bitmark-inc/soulbound/sbt"
)

// Renew - set a new expiry on tokens of the calling issuer
func (r *Registry) Renew(call Call, tokens []sbt.TokenId, expiresAt uint64) error {
	return r.execute("sbt_renew", call, func(u *update) error {
		issuer, err := u.callerIssuer()
		if nil != err {
			return err
		}
		return u.renew(call.Caller, issuer, tokens, expiresAt)
	})
}

func (u *update) renew(issuerAccount string, issuer sbt.IssuerId, tokens []sbt.TokenId, expiresAt uint64) error {
	if 0 == len(tokens) {
		return fault.EmptyBatch
	}
	for _, token := range tokens {
		data, err := u.existing(issuer, token)
		if nil != err {
			return err
		}
		m := data.Metadata.Current()
		m.ExpiresAt = &expiresAt
		data.Metadata = sbt.Versioned(m)
		u.putToken(issuer, token, data)
	}
	u.emit(events.Renew(issuerAccount, tokens))
	return nil
}

// Revoke - end the validity of tokens of the calling issuer
//
// without burn the token stays but expires now; with burn it is
// deleted and both a burn and a revoke event are emitted
func (r *Registry) Revoke(call Call, tokens []sbt.TokenId, burn bool) error {
	return r.execute("sbt_revoke", call, func(u *update) error {
		issuer, err := u.callerIssuer()
		if nil != err {
			return err
		}
		if 0 == len(tokens) {
			return fault.EmptyBatch
		}

		for _, token := range tokens {
			data, err := u.existing(issuer, token)
			if nil != err {
				return err
			}
			if burn {
				u.deleteToken(issuer, token, data)
				continue
			}
			m := data.Metadata.Current()
			if !m.Expired(call.Now) {
				now := call.Now
				m.ExpiresAt = &now
				data.Metadata = sbt.Versioned(m)
				u.putToken(issuer, token, data)
			}
		}

		if burn {
			u.emit(events.Burn(call.Caller, tokens, nil))
		}
		u.emit(events.Revoke(call.Caller, tokens))
		return nil
	})
}

func (u *update) existing(issuer sbt.IssuerId, token sbt.TokenId) (sbt.TokenData, error) {
	data, ok := lookupToken(u.r.pools.IssuerTokens, issuer, token)
	if !ok {
		return sbt.TokenData{}, fault.NotFoundError(fmt.Sprintf("token %d not found", token))
	}
	return data, nil
}
