// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sbt

import (
	"strings"

	"github.com/bitmark-inc/soulbound/fault"
)

// IssuerId - compact registry assigned number for an issuer account
type IssuerId uint32

// TokenId - token number, unique within one issuer
type TokenId uint64

// ClassId - issuer chosen token category, never zero
type ClassId uint64

// limits on account names
const (
	minimumAccountLength = 2
	maximumAccountLength = 64
)

// ValidateAccount - check an account name can be used as a key
//
// follows the NEAR rules: lower case alphanumerics separated by
// single '.', '-' or '_', or a 64 character implicit account
func ValidateAccount(account string) error {
	if len(account) < minimumAccountLength || len(account) > maximumAccountLength {
		return fault.InvalidAccount
	}
	separator := true
	for _, c := range account {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			separator = false
		case strings.ContainsRune(".-_", c):
			if separator {
				return fault.InvalidAccount
			}
			separator = true
		default:
			return fault.InvalidAccount
		}
	}
	if separator {
		return fault.InvalidAccount
	}
	return nil
}
