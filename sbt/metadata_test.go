// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sbt_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/soulbound/fault"
	"github.com/bitmark-inc/soulbound/sbt"
)

func u64(n uint64) *uint64 { return &n }
func str(s string) *string { return &s }

func TestMetadataValidate(t *testing.T) {
	hash := bytes.Repeat([]byte{0x3d}, sbt.ReferenceHashLength)

	tests := []struct {
		metadata sbt.TokenMetadata
		err      error
	}{
		{sbt.TokenMetadata{Class: 1}, nil},
		{sbt.TokenMetadata{Class: 0}, fault.ClassIsZero},
		{sbt.TokenMetadata{Class: 2, Reference: str("abc"), ReferenceHash: hash}, nil},
		{sbt.TokenMetadata{Class: 2, Reference: str("abc")}, fault.InvalidTokenMetadata},
		{sbt.TokenMetadata{Class: 2, ReferenceHash: hash}, fault.InvalidTokenMetadata},
		{sbt.TokenMetadata{Class: 2, Reference: str("abc"), ReferenceHash: []byte{61, 61}}, fault.InvalidReferenceHash},
	}

	for i, item := range tests {
		err := item.metadata.Validate()
		if item.err != err {
			t.Errorf("%d: validate: %v  expected: %v", i, err, item.err)
		}
	}
}

func TestMetadataExpired(t *testing.T) {
	m := sbt.TokenMetadata{Class: 1}
	assert.False(t, m.Expired(1000), "no expiry never expires")

	m.ExpiresAt = u64(1000)
	assert.False(t, m.Expired(999), "before expiry")
	assert.True(t, m.Expired(1000), "at expiry")
	assert.True(t, m.Expired(1001), "after expiry")
}

func TestTokenDataPack(t *testing.T) {
	full := sbt.TokenMetadata{
		Class:         7,
		IssuedAt:      u64(1680513165000),
		ExpiresAt:     u64(1685776365000),
		Reference:     str("https://example.com/doc"),
		ReferenceHash: bytes.Repeat([]byte{0xe8}, sbt.ReferenceHashLength),
	}
	minimal := sbt.TokenMetadata{Class: 1}

	for _, m := range []sbt.TokenMetadata{full, minimal} {
		data := sbt.TokenData{
			Owner:    "alice.near",
			Metadata: sbt.Versioned(m),
		}
		packed := data.Pack()
		assert.Equal(t, sbt.CurrentMetadataVersion, packed[1+len("alice.near")], "version byte not after owner")

		unpacked, err := sbt.UnpackTokenData(packed)
		assert.Nil(t, err, "unpack")
		assert.Equal(t, "alice.near", unpacked.Owner, "owner")
		assert.Equal(t, m, unpacked.Metadata.Current(), "metadata")
		assert.Equal(t, sbt.MetadataV1, unpacked.Metadata.Version(), "version")
	}
}

func TestUnpackTokenDataErrors(t *testing.T) {
	data := sbt.TokenData{
		Owner:    "bob.near",
		Metadata: sbt.Versioned(sbt.TokenMetadata{Class: 3}),
	}
	packed := data.Pack()

	_, err := sbt.UnpackTokenData(packed[:len(packed)-1])
	assert.Equal(t, fault.InvalidRecord, err, "truncated record")

	_, err = sbt.UnpackTokenData(append(packed, 0x00))
	assert.Equal(t, fault.InvalidRecord, err, "trailing bytes")

	unknown := append([]byte{}, packed...)
	unknown[1+len("bob.near")] = 99
	_, err = sbt.UnpackTokenData(unknown)
	assert.Equal(t, fault.InvalidRecord, err, "unknown version")
}
