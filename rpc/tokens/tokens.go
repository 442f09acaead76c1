// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tokens - the SBT RPC service
package tokens

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/soulbound/fault"
	"github.com/bitmark-inc/soulbound/mode"
	"github.com/bitmark-inc/soulbound/registry"
	"github.com/bitmark-inc/soulbound/rpc/caller"
	"github.com/bitmark-inc/soulbound/rpc/ratelimit"
	"github.com/bitmark-inc/soulbound/sbt"
)

const (
	rateLimitSBT = 200
	rateBurstSBT = 100
)

// Ledger - registry calls served by SBT
type Ledger interface {
	Mint(call registry.Call, spec []sbt.TokenSpec, memo *string) ([]sbt.TokenId, error)
	Renew(call registry.Call, tokens []sbt.TokenId, expiresAt uint64) error
	Revoke(call registry.Call, tokens []sbt.TokenId, burn bool) error
	SoulTransfer(call registry.Call, recipient string, limit int, memo *string) (registry.Progress, error)
	Recover(call registry.Call, from string, to string, limit int, memo *string) (registry.Progress, error)
	BurnAll(call registry.Call, limit int) (bool, error)
	Token(issuer string, token sbt.TokenId) (sbt.Token, bool)
	Tokens(query registry.TokensQuery, now uint64) ([]sbt.Token, error)
	TokensByOwner(query registry.OwnerQuery, now uint64) ([]sbt.IssuerTokens, error)
	Supply(issuer string) uint64
	SupplyByClass(issuer string, class sbt.ClassId) uint64
	SupplyByOwner(account string, issuer string, class *sbt.ClassId) uint64
	Issuers() []string
}

// SBT - type for the RPC
type SBT struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
	Ledger       Ledger
	Clock        caller.Clock
}

// New - create the SBT service
func New(log *logger.L, isNormalMode func(mode.Mode) bool, ledger Ledger, clock caller.Clock) *SBT {
	return &SBT{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitSBT, rateBurstSBT),
		IsNormalMode: isNormalMode,
		Ledger:       ledger,
		Clock:        clock,
	}
}

// common checks for every mutating call
func (s *SBT) begin(name string, arguments interface{}, c caller.Arguments) (registry.Call, error) {
	if err := ratelimit.Limit(s.Limiter); nil != err {
		return registry.Call{}, err
	}
	s.Log.Infof("%s: %+v", name, arguments)

	if !s.IsNormalMode(mode.Normal) {
		return registry.Call{}, fault.NotAvailable
	}
	return c.Call(s.Clock())
}

// Mint
// ----

// MintArguments - tokens to mint, the caller must be an issuer
type MintArguments struct {
	caller.Arguments
	Tokens []sbt.TokenSpec `json:"tokens"`
	Memo   *string         `json:"memo,omitempty"`
}

// MintReply - ids in the order of the request
type MintReply struct {
	Tokens []sbt.TokenId `json:"tokens"`
}

// Mint - mint tokens for one or more owners
func (s *SBT) Mint(arguments *MintArguments, reply *MintReply) error {
	call, err := s.begin("SBT.Mint", arguments, arguments.Arguments)
	if nil != err {
		return err
	}

	tokens, err := s.Ledger.Mint(call, arguments.Tokens, arguments.Memo)
	if nil != err {
		return err
	}
	reply.Tokens = tokens
	return nil
}

// Renew and revoke
// ----------------

// RenewArguments - new expiry for issuer tokens
type RenewArguments struct {
	caller.Arguments
	Tokens    []sbt.TokenId `json:"tokens"`
	ExpiresAt uint64        `json:"expires_at"`
}

// RevokeArguments - tokens to revoke or burn
type RevokeArguments struct {
	caller.Arguments
	Tokens []sbt.TokenId `json:"tokens"`
	Burn   bool          `json:"burn"`
}

// EmptyReply - for calls with no result
type EmptyReply struct{}

// Renew - set the expiry of the caller's tokens
func (s *SBT) Renew(arguments *RenewArguments, reply *EmptyReply) error {
	call, err := s.begin("SBT.Renew", arguments, arguments.Arguments)
	if nil != err {
		return err
	}
	return s.Ledger.Renew(call, arguments.Tokens, arguments.ExpiresAt)
}

// Revoke - expire or burn the caller's tokens
func (s *SBT) Revoke(arguments *RevokeArguments, reply *EmptyReply) error {
	call, err := s.begin("SBT.Revoke", arguments, arguments.Arguments)
	if nil != err {
		return err
	}
	return s.Ledger.Revoke(call, arguments.Tokens, arguments.Burn)
}

// Soul transfer, recovery and burn all
// ------------------------------------

// SoulTransferArguments - move every token of the caller
type SoulTransferArguments struct {
	caller.Arguments
	Recipient string  `json:"recipient"`
	Limit     int     `json:"limit"`
	Memo      *string `json:"memo,omitempty"`
}

// RecoverArguments - move one issuer's tokens between accounts
type RecoverArguments struct {
	caller.Arguments
	From  string  `json:"from"`
	To    string  `json:"to"`
	Limit int     `json:"limit"`
	Memo  *string `json:"memo,omitempty"`
}

// BurnAllArguments - burn a batch of the caller's tokens
type BurnAllArguments struct {
	caller.Arguments
	Limit int `json:"limit"`
}

// BurnAllReply - true once nothing is left
type BurnAllReply struct {
	Done bool `json:"done"`
}

// SoulTransfer - one batch of a soul transfer
func (s *SBT) SoulTransfer(arguments *SoulTransferArguments, reply *registry.Progress) error {
	call, err := s.begin("SBT.SoulTransfer", arguments, arguments.Arguments)
	if nil != err {
		return err
	}

	progress, err := s.Ledger.SoulTransfer(call, arguments.Recipient, arguments.Limit, arguments.Memo)
	if nil != err {
		return err
	}
	*reply = progress
	return nil
}

// Recover - one batch of an issuer recovery
func (s *SBT) Recover(arguments *RecoverArguments, reply *registry.Progress) error {
	call, err := s.begin("SBT.Recover", arguments, arguments.Arguments)
	if nil != err {
		return err
	}

	progress, err := s.Ledger.Recover(call, arguments.From, arguments.To, arguments.Limit, arguments.Memo)
	if nil != err {
		return err
	}
	*reply = progress
	return nil
}

// BurnAll - one batch of burning all the caller's tokens
func (s *SBT) BurnAll(arguments *BurnAllArguments, reply *BurnAllReply) error {
	call, err := s.begin("SBT.BurnAll", arguments, arguments.Arguments)
	if nil != err {
		return err
	}

	done, err := s.Ledger.BurnAll(call, arguments.Limit)
	if nil != err {
		return err
	}
	reply.Done = done
	return nil
}
