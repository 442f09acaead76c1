// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package events - structured log lines emitted by registry calls
package events

import (
	"encoding/json"
	"sort"

	"github.com/bitmark-inc/soulbound/sbt"
)

// standards and their versions
const (
	NEP393Standard = "nep393"
	NEP393Version  = "1.0.0"
	IAHStandard    = "i_am_human"
	IAHVersion     = "1.0.0"
)

// Prefix - marks a log line as a structured event
const Prefix = "EVENT_JSON:"

// Event - one structured event
type Event struct {
	Standard string      `json:"standard"`
	Version  string      `json:"version"`
	Event    string      `json:"event"`
	Data     interface{} `json:"data"`
}

// String - the EVENT_JSON log line
func (e Event) String() string {
	b, err := json.Marshal(e)
	if nil != err {
		// only plain structs are ever marshalled
		panic("events: marshal: " + err.Error())
	}
	return Prefix + string(b)
}

// MintData - tokens minted to one owner
type MintData struct {
	Issuer string        `json:"issuer"`
	Owner  string        `json:"owner"`
	Tokens []sbt.TokenId `json:"tokens"`
	Memo   *string       `json:"memo,omitempty"`
}

// TokensData - tokens affected by renew, revoke or burn
type TokensData struct {
	Issuer string        `json:"issuer"`
	Tokens []sbt.TokenId `json:"tokens"`
	Memo   *string       `json:"memo,omitempty"`
}

// RecoverData - completed recovery
type RecoverData struct {
	Issuer   string  `json:"issuer"`
	OldOwner string  `json:"old_owner"`
	NewOwner string  `json:"new_owner"`
	Memo     *string `json:"memo,omitempty"`
}

// SoulTransferData - completed soul transfer
type SoulTransferData struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Memo *string `json:"memo,omitempty"`
}

func nep393(name string, data interface{}) Event {
	return Event{
		Standard: NEP393Standard,
		Version:  NEP393Version,
		Event:    name,
		Data:     data,
	}
}

// Mint - one event listing the minted ids of every recipient
//
// recipients are sorted so equal calls give equal events
func Mint(issuer string, minted map[string][]sbt.TokenId, memo *string) Event {
	owners := make([]string, 0, len(minted))
	for owner := range minted {
		owners = append(owners, owner)
	}
	sort.Strings(owners)

	data := make([]MintData, len(owners))
	for i, owner := range owners {
		data[i] = MintData{
			Issuer: issuer,
			Owner:  owner,
			Tokens: minted[owner],
			Memo:   memo,
		}
	}
	return nep393("sbt_mint", data)
}

// Renew - tokens given a new expiry
func Renew(issuer string, tokens []sbt.TokenId) Event {
	return nep393("sbt_renew", TokensData{Issuer: issuer, Tokens: tokens})
}

// Revoke - tokens revoked, burned or not
func Revoke(issuer string, tokens []sbt.TokenId) Event {
	return nep393("sbt_revoke", TokensData{Issuer: issuer, Tokens: tokens})
}

// Burn - tokens deleted
func Burn(issuer string, tokens []sbt.TokenId, memo *string) Event {
	return nep393("sbt_burn", TokensData{Issuer: issuer, Tokens: tokens, Memo: memo})
}

// Recover - an issuer completed moving tokens between accounts
func Recover(issuer string, oldOwner string, newOwner string, memo *string) Event {
	return nep393("sbt_recover", []RecoverData{{
		Issuer:   issuer,
		OldOwner: oldOwner,
		NewOwner: newOwner,
		Memo:     memo,
	}})
}

// SoulTransfer - an owner completed moving all tokens
func SoulTransfer(from string, to string, memo *string) Event {
	return nep393("sbt_soul_transfer", SoulTransferData{From: from, To: to, Memo: memo})
}

// Flag - accounts marked by a flagger
func Flag(flag sbt.AccountFlag, accounts []string) Event {
	name := "flag_verified"
	if sbt.Blacklisted == flag {
		name = "flag_blacklisted"
	}
	return Event{
		Standard: IAHStandard,
		Version:  IAHVersion,
		Event:    name,
		Data:     accounts,
	}
}

// Unflag - accounts with their flag removed
func Unflag(accounts []string) Event {
	return Event{
		Standard: IAHStandard,
		Version:  IAHVersion,
		Event:    "unflag",
		Data:     accounts,
	}
}
