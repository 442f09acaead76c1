// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/soulbound/registry"
	"github.com/bitmark-inc/soulbound/rpc/human"
)

// IsHuman - proof of personhood for an account
func (c *Client) IsHuman(account string) (*human.IsHumanReply, error) {
	var reply human.IsHumanReply
	if err := c.call("Human.IsHuman", &human.AccountArguments{Account: account}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// HumanCall - the call to forward if the caller is human
//
// a non-zero lockDuration also locks the caller's soul transfer
func (c *Client) HumanCall(contract string, function string, payload string, lockDuration uint64, withProof bool) (*registry.HumanCall, error) {
	arguments := human.CallArguments{
		Arguments:    c.caller,
		Contract:     contract,
		Function:     function,
		Payload:      payload,
		LockDuration: lockDuration,
		WithProof:    withProof,
	}
	method := "Human.Call"
	if 0 != lockDuration {
		method = "Human.CallLock"
	}

	var reply registry.HumanCall
	if err := c.call(method, &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Banned - whether an account is banned
func (c *Client) Banned(account string) (*human.BannedReply, error) {
	var reply human.BannedReply
	if err := c.call("Human.Banned", &human.AccountArguments{Account: account}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Flagged - the flag and transfer lock of an account
func (c *Client) Flagged(account string) (*human.FlaggedReply, error) {
	var reply human.FlaggedReply
	if err := c.call("Human.Flagged", &human.AccountArguments{Account: account}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ClassSet - the issuer and classes that prove humanity
func (c *Client) ClassSet() (*registry.ClassSet, error) {
	var reply registry.ClassSet
	if err := c.call("Human.ClassSet", &human.ClassSetArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
