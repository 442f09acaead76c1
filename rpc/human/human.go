// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package human - the i-am-human RPC service
package human

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
	rateLimitHuman = 500
	rateBurstHuman = 200
)

// Oracle - registry calls served by Human
type Oracle interface {
	IsHuman(account string, now uint64) []sbt.Proof
	IsHumanCall(call registry.Call, contract string, function string, payload string) (*registry.HumanCall, error)
	IsHumanCallLock(call registry.Call, contract string, function string, payload string, lockDuration uint64, withProof bool) (*registry.HumanCall, error)
	IsBanned(account string) bool
	AccountFlagged(account string) sbt.AccountFlag
	ClassSet() registry.ClassSet
	TransferLock(account string) uint64
}

// Human - type for the RPC
type Human struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
	Oracle       Oracle
	Clock        caller.Clock
}

// New - create the Human service
func New(log *logger.L, isNormalMode func(mode.Mode) bool, oracle Oracle, clock caller.Clock) *Human {
	return &Human{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitHuman, rateBurstHuman),
		IsNormalMode: isNormalMode,
		Oracle:       oracle,
		Clock:        clock,
	}
}

// AccountArguments - a single account
type AccountArguments struct {
	Account string `json:"account"`
}

// IsHumanReply - empty proof when the account is not human
type IsHumanReply struct {
	Human bool        `json:"human"`
	Proof []sbt.Proof `json:"proof"`
}

// IsHuman - proof of humanity for an account
func (h *Human) IsHuman(arguments *AccountArguments, reply *IsHumanReply) error {
	if err := ratelimit.Limit(h.Limiter); nil != err {
		return err
	}

	proof := h.Oracle.IsHuman(arguments.Account, h.Clock())
	reply.Human = 0 != len(proof)
	reply.Proof = proof
	if nil == reply.Proof {
		reply.Proof = []sbt.Proof{}
	}
	return nil
}

// CallArguments - a call to forward on behalf of a human
type CallArguments struct {
	caller.Arguments
	Contract     string `json:"contract"`
	Function     string `json:"function"`
	Payload      string `json:"payload"`
	LockDuration uint64 `json:"lock_duration,omitempty"`
	WithProof    bool   `json:"with_proof,omitempty"`
}

// Call - the callback to make if the caller is human
func (h *Human) Call(arguments *CallArguments, reply *registry.HumanCall) error {
	call, err := h.begin("Human.Call", arguments)
	if nil != err {
		return err
	}

	result, err := h.Oracle.IsHumanCall(call, arguments.Contract, arguments.Function, arguments.Payload)
	if nil != err {
		return err
	}
	*reply = *result
	return nil
}

// CallLock - as Call and also lock the caller's soul transfer
func (h *Human) CallLock(arguments *CallArguments, reply *registry.HumanCall) error {
	call, err := h.begin("Human.CallLock", arguments)
	if nil != err {
		return err
	}

	result, err := h.Oracle.IsHumanCallLock(call, arguments.Contract, arguments.Function, arguments.Payload, arguments.LockDuration, arguments.WithProof)
	if nil != err {
		return err
	}
	*reply = *result
	return nil
}

func (h *Human) begin(name string, arguments *CallArguments) (registry.Call, error) {
	if err := ratelimit.Limit(h.Limiter); nil != err {
		return registry.Call{}, err
	}
	h.Log.Infof("%s: %+v", name, arguments)

	if !h.IsNormalMode(mode.Normal) {
		return registry.Call{}, fault.NotAvailable
	}
	return arguments.Arguments.Call(h.Clock())
}

// BannedReply - ban state of an account
type BannedReply struct {
	Banned bool `json:"banned"`
}

// Banned - true once an account has been soul transferred or flagged
func (h *Human) Banned(arguments *AccountArguments, reply *BannedReply) error {
	if err := ratelimit.Limit(h.Limiter); nil != err {
		return err
	}
	reply.Banned = h.Oracle.IsBanned(arguments.Account)
	return nil
}

// FlaggedReply - flag of an account, omitted when none
type FlaggedReply struct {
	Flag         *sbt.AccountFlag `json:"flag,omitempty"`
	TransferLock uint64           `json:"transfer_lock"`
}

// Flagged - flag and soul transfer lock of an account
func (h *Human) Flagged(arguments *AccountArguments, reply *FlaggedReply) error {
	if err := ratelimit.Limit(h.Limiter); nil != err {
		return err
	}
	if flag := h.Oracle.AccountFlagged(arguments.Account); sbt.NoFlag != flag {
		reply.Flag = &flag
	}
	reply.TransferLock = h.Oracle.TransferLock(arguments.Account)
	return nil
}

// ClassSetArguments - no arguments
type ClassSetArguments struct{}

// ClassSet - the issuer and classes that prove humanity
func (h *Human) ClassSet(_ *ClassSetArguments, reply *registry.ClassSet) error {
	if err := ratelimit.Limit(h.Limiter); nil != err {
		return err
	}
	*reply = h.Oracle.ClassSet()
	return nil
}
