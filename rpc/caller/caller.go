// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package caller - identity and deposit carried by mutating RPC calls
//
// the caller account is taken from the arguments as sent, so the RPC
// listeners must only be reachable by a trusted front end that has
// already authenticated the account
package caller

import (
	"time"

	"github.com/bitmark-inc/soulbound/registry"
	"github.com/bitmark-inc/soulbound/sbt"
)

// Clock - current time in unix milliseconds
type Clock func() uint64

// Now - the system clock
func Now() uint64 {
	return uint64(time.Now().UnixNano() / int64(time.Millisecond))
}

// Arguments - embedded in every mutating call
//
// the host authenticates the account before forwarding the call
type Arguments struct {
	Caller  string `json:"caller"`
	Deposit string `json:"deposit,omitempty"`
}

// Call - registry call environment at the given time
func (a Arguments) Call(now uint64) (registry.Call, error) {
	if err := sbt.ValidateAccount(a.Caller); nil != err {
		return registry.Call{}, err
	}
	deposit, err := sbt.ParseYocto(a.Deposit)
	if nil != err {
		return registry.Call{}, err
	}
	return registry.Call{
		Caller:  a.Caller,
		Deposit: deposit,
		Now:     now,
	}, nil
}
