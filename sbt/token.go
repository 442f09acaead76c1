// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sbt

import (
	"github.com/bitmark-inc/soulbound/fault"
	"github.com/bitmark-inc/soulbound/util"
)

// TokenData - the stored form of a token
type TokenData struct {
	Owner    string
	Metadata VersionedMetadata
}

// Pack - owner ++ versioned metadata
func (t TokenData) Pack() []byte {
	p := util.Packed{}
	p = p.AppendString(t.Owner)
	return t.Metadata.pack(p)
}

// UnpackTokenData - decode a stored token
func UnpackTokenData(buffer []byte) (TokenData, error) {
	u := util.NewUnpacker(buffer)
	owner := u.String()
	if nil != u.Err() {
		return TokenData{}, u.Err()
	}
	metadata, err := unpackMetadata(u)
	if nil != err {
		return TokenData{}, err
	}
	if !u.Done() {
		return TokenData{}, fault.InvalidRecord
	}
	return TokenData{
		Owner:    owner,
		Metadata: metadata,
	}, nil
}

// Token - expand stored data for a query result
func (t TokenData) Token(id TokenId) Token {
	return Token{
		Token:    id,
		Owner:    t.Owner,
		Metadata: t.Metadata.Current(),
	}
}

// Token - a token with its owner
type Token struct {
	Token    TokenId       `json:"token"`
	Owner    string        `json:"owner"`
	Metadata TokenMetadata `json:"metadata"`
}

// OwnedToken - a token listed under its owner
type OwnedToken struct {
	Token    TokenId       `json:"token"`
	Metadata TokenMetadata `json:"metadata"`
}

// IssuerTokens - tokens of one owner grouped under the issuer
type IssuerTokens struct {
	Issuer string       `json:"issuer"`
	Tokens []OwnedToken `json:"tokens"`
}

// TokenSpec - tokens to mint for a single owner
type TokenSpec struct {
	Owner    string          `json:"owner"`
	Metadata []TokenMetadata `json:"metadata"`
}

// Proof - token ids that prove personhood, one per required class
type Proof struct {
	Issuer string    `json:"issuer"`
	Tokens []TokenId `json:"tokens"`
}
