// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sbt

import (
	"github.com/bitmark-inc/soulbound/fault"
	"github.com/bitmark-inc/soulbound/util"
)

// ReferenceHashLength - size of a reference hash
const ReferenceHashLength = 32

// TokenMetadata - the current metadata layout
//
// times are unix milliseconds
type TokenMetadata struct {
	Class         ClassId `json:"class"`
	IssuedAt      *uint64 `json:"issued_at,omitempty"`
	ExpiresAt     *uint64 `json:"expires_at,omitempty"`
	Reference     *string `json:"reference,omitempty"`
	ReferenceHash []byte  `json:"reference_hash,omitempty"`
}

// Validate - check the fields an issuer supplied
func (m TokenMetadata) Validate() error {
	if 0 == m.Class {
		return fault.ClassIsZero
	}
	if (nil == m.Reference) != (0 == len(m.ReferenceHash)) {
		return fault.InvalidTokenMetadata
	}
	if 0 != len(m.ReferenceHash) && ReferenceHashLength != len(m.ReferenceHash) {
		return fault.InvalidReferenceHash
	}
	return nil
}

// Expired - true once expires_at is at or before now
func (m TokenMetadata) Expired(now uint64) bool {
	return nil != m.ExpiresAt && *m.ExpiresAt <= now
}

// metadata layout versions
const (
	MetadataV1             byte = 1
	CurrentMetadataVersion      = MetadataV1
)

// VersionedMetadata - metadata as stored, tagged with its layout version
type VersionedMetadata struct {
	version byte
	v1      TokenMetadata
}

// Versioned - wrap metadata in the current layout
func Versioned(m TokenMetadata) VersionedMetadata {
	return VersionedMetadata{
		version: CurrentMetadataVersion,
		v1:      m,
	}
}

// Version - layout version of the stored record
func (v VersionedMetadata) Version() byte {
	return v.version
}

// Current - metadata upgraded to the current layout
func (v VersionedMetadata) Current() TokenMetadata {
	return upgrade(v)
}

// every older layout must have a case that converts it forward
func upgrade(v VersionedMetadata) TokenMetadata {
	switch v.version {
	case MetadataV1:
		return v.v1
	default:
		fault.Corruptf("unsupported metadata version: %d", v.version)
	}
	return TokenMetadata{}
}

// field presence bits for V1
const (
	hasIssuedAt = 1 << iota
	hasExpiresAt
	hasReference
)

// V1 layout:
//   class ++ presence bits ++ [issued_at] ++ [expires_at] ++ [reference ++ reference_hash]
func (v VersionedMetadata) pack(p util.Packed) util.Packed {
	m := v.Current()
	p = p.AppendByte(CurrentMetadataVersion)
	p = p.AppendUint64(uint64(m.Class))

	flags := byte(0)
	if nil != m.IssuedAt {
		flags |= hasIssuedAt
	}
	if nil != m.ExpiresAt {
		flags |= hasExpiresAt
	}
	if nil != m.Reference {
		flags |= hasReference
	}
	p = p.AppendByte(flags)

	if nil != m.IssuedAt {
		p = p.AppendUint64(*m.IssuedAt)
	}
	if nil != m.ExpiresAt {
		p = p.AppendUint64(*m.ExpiresAt)
	}
	if nil != m.Reference {
		p = p.AppendString(*m.Reference)
		p = p.AppendBytes(m.ReferenceHash)
	}
	return p
}

func unpackMetadata(u *util.Unpacker) (VersionedMetadata, error) {
	version := u.Byte()
	switch version {
	case MetadataV1:
	default:
		if nil != u.Err() {
			return VersionedMetadata{}, u.Err()
		}
		return VersionedMetadata{}, fault.InvalidRecord
	}

	m := TokenMetadata{
		Class: ClassId(u.Uint64()),
	}
	flags := u.Byte()
	if 0 != flags&hasIssuedAt {
		n := u.Uint64()
		m.IssuedAt = &n
	}
	if 0 != flags&hasExpiresAt {
		n := u.Uint64()
		m.ExpiresAt = &n
	}
	if 0 != flags&hasReference {
		s := u.String()
		m.Reference = &s
		m.ReferenceHash = u.Bytes()
	}
	if nil != u.Err() {
		return VersionedMetadata{}, u.Err()
	}
	return VersionedMetadata{version: version, v1: m}, nil
}
