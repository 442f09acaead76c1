// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/soulbound/rpc/admin"
	"github.com/bitmark-inc/soulbound/sbt"
)

// AddIssuer - register an issuer
//
// testing selects the testnet call that any account may make
func (c *Client) AddIssuer(issuer string, testing bool) (*admin.IssuerReply, error) {
	arguments := admin.IssuerArguments{
		Arguments: c.caller,
		Issuer:    issuer,
	}
	method := "Admin.AddIssuer"
	if testing {
		method = "Admin.TestingAddIssuer"
	}

	var reply admin.IssuerReply
	if err := c.call(method, &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Flag - flag accounts
func (c *Client) Flag(flag sbt.AccountFlag, accounts []string) error {
	arguments := admin.FlagArguments{
		Arguments: c.caller,
		Flag:      flag,
		Accounts:  accounts,
	}
	var reply admin.EmptyReply
	return c.call("Admin.Flag", &arguments, &reply)
}

// Accounts - Unflag, AddFlagger or RemoveFlagger on a list of accounts
func (c *Client) Accounts(method string, accounts []string) error {
	arguments := admin.AccountsArguments{
		Arguments: c.caller,
		Accounts:  accounts,
	}
	var reply admin.EmptyReply
	return c.call("Admin."+method, &arguments, &reply)
}

// ChangeAdmin - hand over the authority
func (c *Client) ChangeAdmin(account string) error {
	arguments := admin.ChangeAdminArguments{
		Arguments: c.caller,
		Admin:     account,
	}
	var reply admin.EmptyReply
	return c.call("Admin.ChangeAdmin", &arguments, &reply)
}

// SetClassSet - replace the humanity class set
func (c *Client) SetClassSet(issuer string, classes []sbt.ClassId) error {
	arguments := admin.ClassSetArguments{
		Arguments: c.caller,
		Issuer:    issuer,
		Classes:   classes,
	}
	var reply admin.EmptyReply
	return c.call("Admin.SetClassSet", &arguments, &reply)
}

// AdminInfo - current authority and flaggers
func (c *Client) AdminInfo() (*admin.InfoReply, error) {
	var reply admin.InfoReply
	if err := c.call("Admin.Info", &admin.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// AddMinter - allow an account to use the testing mint
func (c *Client) AddMinter(minter string) error {
	arguments := admin.MinterArguments{
		Arguments: c.caller,
		Minter:    minter,
	}
	var reply admin.EmptyReply
	return c.call("Admin.AddMinter", &arguments, &reply)
}

// TestingMint - mint under any issuer on a test network
func (c *Client) TestingMint(issuer string, specs []sbt.TokenSpec) (*admin.TestingMintReply, error) {
	arguments := admin.TestingMintArguments{
		Arguments: c.caller,
		Issuer:    issuer,
		Tokens:    specs,
	}
	var reply admin.TestingMintReply
	if err := c.call("Admin.TestingMint", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// TestingRenew - renew under any issuer on a test network
func (c *Client) TestingRenew(issuer string, ids []sbt.TokenId, expiresAt uint64) error {
	arguments := admin.TestingRenewArguments{
		Arguments: c.caller,
		Issuer:    issuer,
		Tokens:    ids,
		ExpiresAt: expiresAt,
	}
	var reply admin.EmptyReply
	return c.call("Admin.TestingRenew", &arguments, &reply)
}
