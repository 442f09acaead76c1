// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/soulbound/fault"
	"github.com/bitmark-inc/soulbound/sbt"
)

// TokensQuery - tokens of one issuer in token id order
type TokensQuery struct {
	Issuer      string       `json:"issuer"`
	FromToken   *sbt.TokenId `json:"from_token,omitempty"`
	Limit       *uint32      `json:"limit,omitempty"`
	WithExpired bool         `json:"with_expired"`
}

// OwnerQuery - tokens of one owner grouped by issuer
//
// FromClass can only be used together with Issuer
type OwnerQuery struct {
	Account     string       `json:"account"`
	Issuer      *string      `json:"issuer,omitempty"`
	FromClass   *sbt.ClassId `json:"from_class,omitempty"`
	Limit       *uint32      `json:"limit,omitempty"`
	WithExpired bool         `json:"with_expired"`
}

// returned by a Map callback to end the scan
var errStop = fault.GenericError("stop")

func (r *Registry) limit(limit *uint32) (int, error) {
	if nil == limit {
		return r.queryLimit, nil
	}
	if 0 == *limit {
		return 0, fault.InvalidLimit
	}
	if int(*limit) > r.queryLimit {
		return r.queryLimit, nil
	}
	return int(*limit), nil
}

// Token - a single token, false if the issuer or token is unknown
func (r *Registry) Token(issuer string, token sbt.TokenId) (sbt.Token, bool) {
	r.RLock()
	defer r.RUnlock()

	id, ok := issuerId(r.pools.Issuers, issuer)
	if !ok {
		return sbt.Token{}, false
	}
	data, ok := lookupToken(r.pools.IssuerTokens, id, token)
	if !ok {
		return sbt.Token{}, false
	}
	return data.Token(token), true
}

// Tokens - tokens of an issuer starting from FromToken
//
// expired tokens are skipped unless WithExpired is set
func (r *Registry) Tokens(query TokensQuery, now uint64) ([]sbt.Token, error) {
	limit, err := r.limit(query.Limit)
	if nil != err {
		return nil, err
	}

	r.RLock()
	defer r.RUnlock()

	tokens := make([]sbt.Token, 0)
	issuer, ok := issuerId(r.pools.Issuers, query.Issuer)
	if !ok {
		return tokens, nil
	}

	cursor := r.pools.IssuerTokens.NewFetchCursor().Prefix(issuerKey(issuer))
	if nil != query.FromToken {
		cursor.Seek(tokenKey(issuer, *query.FromToken))
	}
	err = cursor.Map(func(key []byte, value []byte) error {
		data, err := sbt.UnpackTokenData(value)
		if nil != err {
			fault.Corruptf("token key: %x  error: %s", key, err)
		}
		token := data.Token(tokenIdValue(key[issuerIdSize:]))
		if !query.WithExpired && token.Metadata.Expired(now) {
			return nil
		}
		tokens = append(tokens, token)
		if len(tokens) >= limit {
			return errStop
		}
		return nil
	})
	if nil != err && errStop != err {
		return nil, err
	}
	return tokens, nil
}

// TokensByOwner - tokens of an account grouped by issuer
//
// the result is empty while a soul transfer from the account is in
// progress
func (r *Registry) TokensByOwner(query OwnerQuery, now uint64) ([]sbt.IssuerTokens, error) {
	if err := sbt.ValidateAccount(query.Account); nil != err {
		return nil, err
	}
	if nil != query.FromClass && nil == query.Issuer {
		return nil, fault.FromClassRequiresIssuer
	}
	limit, err := r.limit(query.Limit)
	if nil != err {
		return nil, err
	}

	r.RLock()
	defer r.RUnlock()

	pools := r.pools
	result := make([]sbt.IssuerTokens, 0)
	if transferring(pools.SoulTransfers, query.Account) {
		return result, nil
	}

	cursor := pools.Balances.NewFetchCursor()
	if nil == query.Issuer {
		cursor.Prefix(ownerPrefix(query.Account))
	} else {
		issuer, ok := issuerId(pools.Issuers, *query.Issuer)
		if !ok {
			return result, nil
		}
		cursor.Prefix(ownerIssuerKey(query.Account, issuer))
		if nil != query.FromClass {
			cursor.Seek(balanceKey(query.Account, issuer, *query.FromClass))
		}
	}

	n := 0
	current := sbt.IssuerId(0)
	err = cursor.Map(func(key []byte, value []byte) error {
		issuer, _ := splitBalanceKey(key)
		token := tokenIdValue(value)
		metadata := r.tokenData(pools.IssuerTokens, issuer, token).Metadata.Current()
		if !query.WithExpired && metadata.Expired(now) {
			return nil
		}
		if issuer != current {
			result = append(result, sbt.IssuerTokens{
				Issuer: r.issuerAccount(issuer),
				Tokens: make([]sbt.OwnedToken, 0),
			})
			current = issuer
		}
		last := &result[len(result)-1]
		last.Tokens = append(last.Tokens, sbt.OwnedToken{
			Token:    token,
			Metadata: metadata,
		})
		n += 1
		if n >= limit {
			return errStop
		}
		return nil
	})
	if nil != err && errStop != err {
		return nil, err
	}
	return result, nil
}

// Supply - live tokens of an issuer, 0 for an unknown issuer
func (r *Registry) Supply(issuer string) uint64 {
	r.RLock()
	defer r.RUnlock()

	id, ok := issuerId(r.pools.Issuers, issuer)
	if !ok {
		return 0
	}
	return count(r.pools.SupplyByIssuer, issuerKey(id))
}

// SupplyByClass - live tokens of one class of an issuer
func (r *Registry) SupplyByClass(issuer string, class sbt.ClassId) uint64 {
	r.RLock()
	defer r.RUnlock()

	id, ok := issuerId(r.pools.Issuers, issuer)
	if !ok {
		return 0
	}
	return count(r.pools.SupplyByClass, classKey(id, class))
}

// SupplyByOwner - live tokens an account holds from an issuer
//
// with a class the result is 0 or 1; always 0 for an invalid account
// or while a soul transfer from the account is in progress
func (r *Registry) SupplyByOwner(account string, issuer string, class *sbt.ClassId) uint64 {
	if nil != sbt.ValidateAccount(account) {
		return 0
	}

	r.RLock()
	defer r.RUnlock()

	pools := r.pools
	if transferring(pools.SoulTransfers, account) {
		return 0
	}
	id, ok := issuerId(pools.Issuers, issuer)
	if !ok {
		return 0
	}
	if nil != class {
		if pools.Balances.Has(balanceKey(account, id, *class)) {
			return 1
		}
		return 0
	}
	return count(pools.SupplyByOwner, ownerIssuerKey(account, id))
}

// EventCount - number of events in the journal
func (r *Registry) EventCount() uint64 {
	r.RLock()
	defer r.RUnlock()
	return count(r.pools.Registry, eventSequenceKey)
}
