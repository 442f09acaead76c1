// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/soulbound/fault"
	"github.com/bitmark-inc/soulbound/util"
)

func TestVarint64(t *testing.T) {
	tests := []struct {
		value    uint64
		expected []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{0x7f, []byte{0x7f}},
		{0x80, []byte{0x80, 0x01}},
		{0x3fff, []byte{0xff, 0x7f}},
		{0x4000, []byte{0x80, 0x80, 0x01}},
		{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}

	for i, item := range tests {
		result := util.ToVarint64(item.value)
		if !bytes.Equal(result, item.expected) {
			t.Errorf("%d: to: %d  actual: %x  expected: %x", i, item.value, result, item.expected)
		}
		value, n := util.FromVarint64(result)
		if value != item.value || n != len(item.expected) {
			t.Errorf("%d: from: %x  actual: %d/%d  expected: %d/%d", i, result, value, n, item.value, len(item.expected))
		}
	}
}

func TestVarint64Truncated(t *testing.T) {
	value, n := util.FromVarint64([]byte{0x80, 0x80})
	assert.Equal(t, uint64(0), value, "value")
	assert.Equal(t, 0, n, "count")
}

func TestPackUnpack(t *testing.T) {
	p := util.Packed{}
	p = p.AppendByte(3)
	p = p.AppendUint64(123456789)
	p = p.AppendString("alice.near")
	p = p.AppendBytes(nil)

	u := util.NewUnpacker(p)
	assert.Equal(t, byte(3), u.Byte(), "byte")
	assert.Equal(t, uint64(123456789), u.Uint64(), "uint64")
	assert.Equal(t, "alice.near", u.String(), "string")
	assert.Equal(t, 0, len(u.Bytes()), "empty bytes")
	assert.True(t, u.Done(), "record not consumed")
	assert.Nil(t, u.Err(), "error")
}

func TestUnpackShortRecord(t *testing.T) {
	p := util.Packed{}.AppendUint64(10).AppendByte('x')

	u := util.NewUnpacker(p)
	_ = u.Bytes()
	assert.Equal(t, fault.InvalidRecord, u.Err(), "wrong error")
	assert.Equal(t, uint64(0), u.Uint64(), "reads after failure must return zero")
	assert.False(t, u.Done(), "failed unpacker is not done")
}
