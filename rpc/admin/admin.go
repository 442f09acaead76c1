// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package admin - the authority and testing RPC service
package admin

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
	rateLimitAdmin = 50
	rateBurstAdmin = 20
)

// Governance - registry calls served by Admin
type Governance interface {
	Authority() string
	AddIssuer(call registry.Call, issuer string) (bool, error)
	Flag(call registry.Call, flag sbt.AccountFlag, accounts []string) error
	Unflag(call registry.Call, accounts []string) error
	ChangeAdmin(call registry.Call, admin string) error
	AddFlagger(call registry.Call, accounts []string) error
	RemoveFlagger(call registry.Call, accounts []string) error
	Flaggers() []string
	SetClassSet(call registry.Call, issuer string, classes []sbt.ClassId) error
	AddMinter(call registry.Call, minter string) error
	TestingAddIssuer(call registry.Call, issuer string) (bool, error)
	TestingMint(call registry.Call, issuer string, spec []sbt.TokenSpec) ([]sbt.TokenId, error)
	TestingRenew(call registry.Call, issuer string, tokens []sbt.TokenId, expiresAt uint64) error
}

// Admin - type for the RPC
type Admin struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
	Governance   Governance
	Clock        caller.Clock
}

// New - create the Admin service
func New(log *logger.L, isNormalMode func(mode.Mode) bool, governance Governance, clock caller.Clock) *Admin {
	return &Admin{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitAdmin, rateBurstAdmin),
		IsNormalMode: isNormalMode,
		Governance:   governance,
		Clock:        clock,
	}
}

func (a *Admin) begin(name string, arguments interface{}, c caller.Arguments) (registry.Call, error) {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return registry.Call{}, err
	}
	a.Log.Infof("%s: %+v", name, arguments)

	if !a.IsNormalMode(mode.Normal) {
		return registry.Call{}, fault.NotAvailable
	}
	return c.Call(a.Clock())
}

// EmptyReply - for calls with no result
type EmptyReply struct{}

// Issuers
// -------

// IssuerArguments - an issuer to register
type IssuerArguments struct {
	caller.Arguments
	Issuer string `json:"issuer"`
}

// IssuerReply - false if already registered
type IssuerReply struct {
	Added bool `json:"added"`
}

// AddIssuer - register an issuer, authority only
func (a *Admin) AddIssuer(arguments *IssuerArguments, reply *IssuerReply) error {
	call, err := a.begin("Admin.AddIssuer", arguments, arguments.Arguments)
	if nil != err {
		return err
	}
	added, err := a.Governance.AddIssuer(call, arguments.Issuer)
	if nil != err {
		return err
	}
	reply.Added = added
	return nil
}

// Flags
// -----

// FlagArguments - accounts to flag
type FlagArguments struct {
	caller.Arguments
	Flag     sbt.AccountFlag `json:"flag"`
	Accounts []string        `json:"accounts"`
}

// AccountsArguments - a list of accounts
type AccountsArguments struct {
	caller.Arguments
	Accounts []string `json:"accounts"`
}

// Flag - flag accounts, authorized flaggers only
func (a *Admin) Flag(arguments *FlagArguments, reply *EmptyReply) error {
	call, err := a.begin("Admin.Flag", arguments, arguments.Arguments)
	if nil != err {
		return err
	}
	return a.Governance.Flag(call, arguments.Flag, arguments.Accounts)
}

// Unflag - remove account flags, authorized flaggers only
func (a *Admin) Unflag(arguments *AccountsArguments, reply *EmptyReply) error {
	call, err := a.begin("Admin.Unflag", arguments, arguments.Arguments)
	if nil != err {
		return err
	}
	return a.Governance.Unflag(call, arguments.Accounts)
}

// AddFlagger - authorize flaggers, authority only
func (a *Admin) AddFlagger(arguments *AccountsArguments, reply *EmptyReply) error {
	call, err := a.begin("Admin.AddFlagger", arguments, arguments.Arguments)
	if nil != err {
		return err
	}
	return a.Governance.AddFlagger(call, arguments.Accounts)
}

// RemoveFlagger - revoke flaggers, authority only
func (a *Admin) RemoveFlagger(arguments *AccountsArguments, reply *EmptyReply) error {
	call, err := a.begin("Admin.RemoveFlagger", arguments, arguments.Arguments)
	if nil != err {
		return err
	}
	return a.Governance.RemoveFlagger(call, arguments.Accounts)
}

// Authority
// ---------

// ChangeAdminArguments - the new authority
type ChangeAdminArguments struct {
	caller.Arguments
	Admin string `json:"admin"`
}

// ChangeAdmin - hand over the authority
func (a *Admin) ChangeAdmin(arguments *ChangeAdminArguments, reply *EmptyReply) error {
	call, err := a.begin("Admin.ChangeAdmin", arguments, arguments.Arguments)
	if nil != err {
		return err
	}
	return a.Governance.ChangeAdmin(call, arguments.Admin)
}

// ClassSetArguments - the issuer and classes that prove humanity
type ClassSetArguments struct {
	caller.Arguments
	Issuer  string        `json:"issuer"`
	Classes []sbt.ClassId `json:"classes"`
}

// SetClassSet - replace the humanity class set, authority only
func (a *Admin) SetClassSet(arguments *ClassSetArguments, reply *EmptyReply) error {
	call, err := a.begin("Admin.SetClassSet", arguments, arguments.Arguments)
	if nil != err {
		return err
	}
	return a.Governance.SetClassSet(call, arguments.Issuer, arguments.Classes)
}

// InfoArguments - no arguments
type InfoArguments struct{}

// InfoReply - current authority and flaggers
type InfoReply struct {
	Authority string   `json:"authority"`
	Flaggers  []string `json:"flaggers"`
}

// Info - who holds administrative rights
func (a *Admin) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}
	reply.Authority = a.Governance.Authority()
	reply.Flaggers = a.Governance.Flaggers()
	return nil
}

// Testing network only
// --------------------

// MinterArguments - an admin minter to add
type MinterArguments struct {
	caller.Arguments
	Minter string `json:"minter"`
}

// TestingMintArguments - tokens to mint under an issuer
type TestingMintArguments struct {
	caller.Arguments
	Issuer string          `json:"issuer"`
	Tokens []sbt.TokenSpec `json:"tokens"`
}

// TestingMintReply - minted ids
type TestingMintReply struct {
	Tokens []sbt.TokenId `json:"tokens"`
}

// TestingRenewArguments - new expiry for an issuer's tokens
type TestingRenewArguments struct {
	caller.Arguments
	Issuer    string        `json:"issuer"`
	Tokens    []sbt.TokenId `json:"tokens"`
	ExpiresAt uint64        `json:"expires_at"`
}

// AddMinter - allow an account to use the testing mint
func (a *Admin) AddMinter(arguments *MinterArguments, reply *EmptyReply) error {
	call, err := a.begin("Admin.AddMinter", arguments, arguments.Arguments)
	if nil != err {
		return err
	}
	return a.Governance.AddMinter(call, arguments.Minter)
}

// TestingAddIssuer - register an issuer without the authority
func (a *Admin) TestingAddIssuer(arguments *IssuerArguments, reply *IssuerReply) error {
	call, err := a.begin("Admin.TestingAddIssuer", arguments, arguments.Arguments)
	if nil != err {
		return err
	}
	added, err := a.Governance.TestingAddIssuer(call, arguments.Issuer)
	if nil != err {
		return err
	}
	reply.Added = added
	return nil
}

// TestingMint - mint on behalf of an issuer
func (a *Admin) TestingMint(arguments *TestingMintArguments, reply *TestingMintReply) error {
	call, err := a.begin("Admin.TestingMint", arguments, arguments.Arguments)
	if nil != err {
		return err
	}
	tokens, err := a.Governance.TestingMint(call, arguments.Issuer, arguments.Tokens)
	if nil != err {
		return err
	}
	reply.Tokens = tokens
	return nil
}

// TestingRenew - renew on behalf of an issuer
func (a *Admin) TestingRenew(arguments *TestingRenewArguments, reply *EmptyReply) error {
	call, err := a.begin("Admin.TestingRenew", arguments, arguments.Arguments)
	if nil != err {
		return err
	}
	return a.Governance.TestingRenew(call, arguments.Issuer, arguments.Tokens, arguments.ExpiresAt)
}
