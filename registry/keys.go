// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"encoding/binary"

	"github.com/bitmark-inc/soulbound/fault"
	"github.com/bitmark-inc/soulbound/sbt"
)

// registry pool keys
var (
	authorityKey     = []byte("authority")
	nextIssuerKey    = []byte("next-issuer")
	iahKey           = []byte("iah-class-set")
	eventSequenceKey = []byte("event-sequence")
)

const (
	issuerIdSize = 4
	classIdSize  = 8
	tokenIdSize  = 8

	// issuer id ++ class id after the owner terminator
	balanceTailSize = issuerIdSize + classIdSize
)

// account names never contain 0x00 so it ends an owner segment
// and "alice" cannot collide with "alice.near"
const ownerTerminator = 0x00

func accountKey(account string) []byte {
	return []byte(account)
}

func issuerKey(issuer sbt.IssuerId) []byte {
	key := make([]byte, issuerIdSize)
	binary.BigEndian.PutUint32(key, uint32(issuer))
	return key
}

// issuer id ++ token id
func tokenKey(issuer sbt.IssuerId, token sbt.TokenId) []byte {
	key := make([]byte, issuerIdSize+tokenIdSize)
	binary.BigEndian.PutUint32(key, uint32(issuer))
	binary.BigEndian.PutUint64(key[issuerIdSize:], uint64(token))
	return key
}

// owner ++ 0x00
func ownerPrefix(owner string) []byte {
	key := make([]byte, 0, len(owner)+1+balanceTailSize)
	key = append(key, owner...)
	return append(key, ownerTerminator)
}

// owner ++ 0x00 ++ issuer id
func ownerIssuerKey(owner string, issuer sbt.IssuerId) []byte {
	return append(ownerPrefix(owner), issuerKey(issuer)...)
}

// owner ++ 0x00 ++ issuer id ++ class id
func balanceKey(owner string, issuer sbt.IssuerId, class sbt.ClassId) []byte {
	key := ownerIssuerKey(owner, issuer)
	c := make([]byte, classIdSize)
	binary.BigEndian.PutUint64(c, uint64(class))
	return append(key, c...)
}

// extract the issuer and class from a balance key
func splitBalanceKey(key []byte) (sbt.IssuerId, sbt.ClassId) {
	if len(key) < balanceTailSize+2 || ownerTerminator != key[len(key)-balanceTailSize-1] {
		fault.Corruptf("balance key: %x", key)
	}
	tail := key[len(key)-balanceTailSize:]
	issuer := sbt.IssuerId(binary.BigEndian.Uint32(tail[:issuerIdSize]))
	class := sbt.ClassId(binary.BigEndian.Uint64(tail[issuerIdSize:]))
	return issuer, class
}

// issuer id ++ class id
func classKey(issuer sbt.IssuerId, class sbt.ClassId) []byte {
	key := make([]byte, issuerIdSize+classIdSize)
	binary.BigEndian.PutUint32(key, uint32(issuer))
	binary.BigEndian.PutUint64(key[issuerIdSize:], uint64(class))
	return key
}

// issuer id ++ owner
func recoveryKey(issuer sbt.IssuerId, owner string) []byte {
	return append(issuerKey(issuer), owner...)
}

// the smallest key strictly after key
func after(key []byte) []byte {
	next := make([]byte, len(key), len(key)+1)
	copy(next, key)
	return append(next, 0x00)
}

func tokenIdValue(value []byte) sbt.TokenId {
	if tokenIdSize != len(value) {
		fault.Corruptf("balance value: %x", value)
	}
	return sbt.TokenId(binary.BigEndian.Uint64(value))
}

func tokenIdBytes(token sbt.TokenId) []byte {
	value := make([]byte, tokenIdSize)
	binary.BigEndian.PutUint64(value, uint64(token))
	return value
}
