// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokens

import (
	"github.com/bitmark-inc/soulbound/registry"
	"github.com/bitmark-inc/soulbound/rpc/ratelimit"
	"github.com/bitmark-inc/soulbound/sbt"
)

// TokenArguments - a single token
type TokenArguments struct {
	Issuer string      `json:"issuer"`
	Token  sbt.TokenId `json:"token"`
}

// TokenReply - nil token when not found
type TokenReply struct {
	Token *sbt.Token `json:"token"`
}

// Token - look up one token
func (s *SBT) Token(arguments *TokenArguments, reply *TokenReply) error {
	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	token, ok := s.Ledger.Token(arguments.Issuer, arguments.Token)
	if ok {
		reply.Token = &token
	}
	return nil
}

// TokensReply - tokens in id order
type TokensReply struct {
	Tokens []sbt.Token `json:"tokens"`
}

// Tokens - an issuer's tokens
func (s *SBT) Tokens(arguments *registry.TokensQuery, reply *TokensReply) error {
	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	tokens, err := s.Ledger.Tokens(*arguments, s.Clock())
	if nil != err {
		return err
	}
	reply.Tokens = tokens
	return nil
}

// OwnerReply - tokens grouped by issuer
type OwnerReply struct {
	Issuers []sbt.IssuerTokens `json:"issuers"`
}

// TokensByOwner - an account's tokens
func (s *SBT) TokensByOwner(arguments *registry.OwnerQuery, reply *OwnerReply) error {
	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	issuers, err := s.Ledger.TokensByOwner(*arguments, s.Clock())
	if nil != err {
		return err
	}
	reply.Issuers = issuers
	return nil
}

// SupplyArguments - which count to return
//
// Account selects the owner count, Class narrows issuer or owner
// counts to one class
type SupplyArguments struct {
	Issuer  string       `json:"issuer"`
	Account string       `json:"account,omitempty"`
	Class   *sbt.ClassId `json:"class,omitempty"`
}

// SupplyReply - a token count
type SupplyReply struct {
	Supply uint64 `json:"supply"`
}

// Supply - tokens of an issuer
func (s *SBT) Supply(arguments *SupplyArguments, reply *SupplyReply) error {
	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}
	reply.Supply = s.Ledger.Supply(arguments.Issuer)
	return nil
}

// SupplyByClass - tokens of one issuer class
func (s *SBT) SupplyByClass(arguments *SupplyArguments, reply *SupplyReply) error {
	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}
	class := sbt.ClassId(0)
	if nil != arguments.Class {
		class = *arguments.Class
	}
	reply.Supply = s.Ledger.SupplyByClass(arguments.Issuer, class)
	return nil
}

// SupplyByOwner - tokens of one issuer held by an account
func (s *SBT) SupplyByOwner(arguments *SupplyArguments, reply *SupplyReply) error {
	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}
	reply.Supply = s.Ledger.SupplyByOwner(arguments.Account, arguments.Issuer, arguments.Class)
	return nil
}

// IssuersArguments - no arguments
type IssuersArguments struct{}

// IssuersReply - registered issuers
type IssuersReply struct {
	Issuers []string `json:"issuers"`
}

// Issuers - every registered issuer in registration order
func (s *SBT) Issuers(_ *IssuersArguments, reply *IssuersReply) error {
	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}
	reply.Issuers = s.Ledger.Issuers()
	return nil
}
