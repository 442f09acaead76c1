// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package events

import (
	"encoding/binary"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/soulbound/fault"
)

// DigestLength - size of a record digest
const DigestLength = 32

// Digest - SHA3-256 of an event line
type Digest [DigestLength]byte

// MarshalText - hex string
func (d Digest) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(d[:])), nil
}

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Record - one journal entry
type Record struct {
	Sequence uint64 `json:"sequence"`
	Digest   Digest `json:"digest"`
	Text     string `json:"text"`
}

// NewRecord - journal entry for an event
func NewRecord(sequence uint64, e Event) Record {
	text := e.String()
	return Record{
		Sequence: sequence,
		Digest:   sha3.Sum256([]byte(text)),
		Text:     text,
	}
}

// Key - big endian sequence so the journal iterates in order
func (r Record) Key() []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, r.Sequence)
	return key
}

// Pack - digest ++ text
func (r Record) Pack() []byte {
	buffer := make([]byte, 0, DigestLength+len(r.Text))
	buffer = append(buffer, r.Digest[:]...)
	return append(buffer, r.Text...)
}

// UnpackRecord - decode and verify a stored journal entry
func UnpackRecord(key []byte, value []byte) (Record, error) {
	if 8 != len(key) || len(value) < DigestLength {
		return Record{}, fault.InvalidRecord
	}
	r := Record{
		Sequence: binary.BigEndian.Uint64(key),
		Text:     string(value[DigestLength:]),
	}
	copy(r.Digest[:], value[:DigestLength])

	if r.Digest != sha3.Sum256(value[DigestLength:]) {
		return Record{}, fault.RecordError("event digest mismatch")
	}
	if !strings.HasPrefix(r.Text, Prefix) {
		return Record{}, fault.InvalidRecord
	}
	return r, nil
}

// Sink - receives committed records in sequence order
type Sink interface {
	Publish(records []Record)
}
