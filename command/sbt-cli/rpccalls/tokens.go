// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/soulbound/registry"
	"github.com/bitmark-inc/soulbound/rpc/tokens"
	"github.com/bitmark-inc/soulbound/sbt"
)

// Mint - mint tokens as the calling issuer
func (c *Client) Mint(specs []sbt.TokenSpec, memo *string) (*tokens.MintReply, error) {
	arguments := tokens.MintArguments{
		Arguments: c.caller,
		Tokens:    specs,
		Memo:      memo,
	}
	var reply tokens.MintReply
	if err := c.call("SBT.Mint", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Renew - set a new expiry on the caller's tokens
func (c *Client) Renew(ids []sbt.TokenId, expiresAt uint64) error {
	arguments := tokens.RenewArguments{
		Arguments: c.caller,
		Tokens:    ids,
		ExpiresAt: expiresAt,
	}
	var reply tokens.EmptyReply
	return c.call("SBT.Renew", &arguments, &reply)
}

// Revoke - expire or burn the caller's tokens
func (c *Client) Revoke(ids []sbt.TokenId, burn bool) error {
	arguments := tokens.RevokeArguments{
		Arguments: c.caller,
		Tokens:    ids,
		Burn:      burn,
	}
	var reply tokens.EmptyReply
	return c.call("SBT.Revoke", &arguments, &reply)
}

// SoulTransfer - one batch of moving the caller's tokens
func (c *Client) SoulTransfer(recipient string, limit int, memo *string) (*registry.Progress, error) {
	arguments := tokens.SoulTransferArguments{
		Arguments: c.caller,
		Recipient: recipient,
		Limit:     limit,
		Memo:      memo,
	}
	var reply registry.Progress
	if err := c.call("SBT.SoulTransfer", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Recover - one batch of an issuer recovery
func (c *Client) Recover(from string, to string, limit int, memo *string) (*registry.Progress, error) {
	arguments := tokens.RecoverArguments{
		Arguments: c.caller,
		From:      from,
		To:        to,
		Limit:     limit,
		Memo:      memo,
	}
	var reply registry.Progress
	if err := c.call("SBT.Recover", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// BurnAll - one batch of burning the caller's tokens
func (c *Client) BurnAll(limit int) (*tokens.BurnAllReply, error) {
	arguments := tokens.BurnAllArguments{
		Arguments: c.caller,
		Limit:     limit,
	}
	var reply tokens.BurnAllReply
	if err := c.call("SBT.BurnAll", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Token - a single token, nil when missing
func (c *Client) Token(issuer string, id sbt.TokenId) (*tokens.TokenReply, error) {
	arguments := tokens.TokenArguments{
		Issuer: issuer,
		Token:  id,
	}
	var reply tokens.TokenReply
	if err := c.call("SBT.Token", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Tokens - a page of an issuer's tokens
func (c *Client) Tokens(query registry.TokensQuery) (*tokens.TokensReply, error) {
	var reply tokens.TokensReply
	if err := c.call("SBT.Tokens", &query, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// TokensByOwner - an owner's tokens grouped by issuer
func (c *Client) TokensByOwner(query registry.OwnerQuery) (*tokens.OwnerReply, error) {
	var reply tokens.OwnerReply
	if err := c.call("SBT.TokensByOwner", &query, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Supply - total, per class or per owner depending on method
func (c *Client) Supply(method string, arguments tokens.SupplyArguments) (*tokens.SupplyReply, error) {
	var reply tokens.SupplyReply
	if err := c.call("SBT."+method, &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Issuers - registered issuers
func (c *Client) Issuers() (*tokens.IssuersReply, error) {
	var reply tokens.IssuersReply
	if err := c.call("SBT.Issuers", &tokens.IssuersArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
