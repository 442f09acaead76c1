// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sbt

import (
	"encoding/json"

	"github.com/bitmark-inc/soulbound/fault"
)

// AccountFlag - mark placed on an account by an authorized flagger
type AccountFlag byte

// possible flags, zero means no flag
const (
	NoFlag      AccountFlag = 0
	Blacklisted AccountFlag = 1
	Verified    AccountFlag = 2
)

func (f AccountFlag) String() string {
	switch f {
	case Blacklisted:
		return "Blacklisted"
	case Verified:
		return "Verified"
	default:
		return "None"
	}
}

// ParseAccountFlag - flag from its name
func ParseAccountFlag(s string) (AccountFlag, error) {
	switch s {
	case "Blacklisted", "blacklisted":
		return Blacklisted, nil
	case "Verified", "verified":
		return Verified, nil
	default:
		return NoFlag, fault.InvalidError("invalid account flag: " + s)
	}
}

// MarshalJSON - flag name as a string
func (f AccountFlag) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON - flag from a name string
func (f *AccountFlag) UnmarshalJSON(b []byte) error {
	s := ""
	if err := json.Unmarshal(b, &s); nil != err {
		return err
	}
	flag, err := ParseAccountFlag(s)
	if nil != err {
		return err
	}
	*f = flag
	return nil
}
