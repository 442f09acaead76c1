// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/bitmark-inc/soulbound/fault"
)

// Varint64MaximumBytes - maximum possible number of bytes in Varint64
const Varint64MaximumBytes = 9

// ToVarint64 - convert a 64 bit unsigned integer to Varint64
//
// seven bits per byte, low bits first, top bit set on every byte
// except the last; the ninth byte carries a full eight bits
func ToVarint64(value uint64) []byte {
	result := make([]byte, 0, Varint64MaximumBytes)
	for i := 0; i < Varint64MaximumBytes-1; i += 1 {
		if value < 0x80 {
			return append(result, byte(value))
		}
		result = append(result, byte(value)|0x80)
		value >>= 7
	}
	return append(result, byte(value))
}

// FromVarint64 - convert an array of up to Varint64MaximumBytes to a uint64
//
// also return the number of bytes used as second value
// returns 0, 0 if varint64 buffer is truncated
func FromVarint64(buffer []byte) (uint64, int) {
	result := uint64(0)
	shift := uint(0)

	for count := 0; count < len(buffer) && count < Varint64MaximumBytes; count += 1 {
		b := uint64(buffer[count])
		if Varint64MaximumBytes-1 == count {
			return result | b<<shift, count + 1
		}
		result |= (b & 0x7f) << shift
		if 0 == b&0x80 {
			return result, count + 1
		}
		shift += 7
	}
	return 0, 0
}

// Packed - a record under construction
type Packed []byte

// AppendByte - add a single byte
func (p Packed) AppendByte(b byte) Packed {
	return append(p, b)
}

// AppendUint64 - add a varint
func (p Packed) AppendUint64(value uint64) Packed {
	return append(p, ToVarint64(value)...)
}

// AppendBytes - add a length prefixed byte string
func (p Packed) AppendBytes(data []byte) Packed {
	p = p.AppendUint64(uint64(len(data)))
	return append(p, data...)
}

// AppendString - add a length prefixed string
func (p Packed) AppendString(s string) Packed {
	return p.AppendBytes([]byte(s))
}

// Unpacker - sequential reader over a packed record
//
// the first failure is sticky and reported by Err
type Unpacker struct {
	buffer []byte
	err    error
}

// NewUnpacker - start reading at the beginning of a record
func NewUnpacker(buffer []byte) *Unpacker {
	return &Unpacker{buffer: buffer}
}

// Byte - read one byte
func (u *Unpacker) Byte() byte {
	if nil != u.err {
		return 0
	}
	if 0 == len(u.buffer) {
		u.err = fault.InvalidRecord
		return 0
	}
	b := u.buffer[0]
	u.buffer = u.buffer[1:]
	return b
}

// Uint64 - read a varint
func (u *Unpacker) Uint64() uint64 {
	if nil != u.err {
		return 0
	}
	value, n := FromVarint64(u.buffer)
	if 0 == n {
		u.err = fault.InvalidRecord
		return 0
	}
	u.buffer = u.buffer[n:]
	return value
}

// Bytes - read a length prefixed byte string, returns a copy
func (u *Unpacker) Bytes() []byte {
	length := u.Uint64()
	if nil != u.err {
		return nil
	}
	if uint64(len(u.buffer)) < length {
		u.err = fault.InvalidRecord
		return nil
	}
	data := make([]byte, length)
	copy(data, u.buffer[:length])
	u.buffer = u.buffer[length:]
	return data
}

// String - read a length prefixed string
func (u *Unpacker) String() string {
	return string(u.Bytes())
}

// Done - the whole record was consumed without error
func (u *Unpacker) Done() bool {
	return nil == u.err && 0 == len(u.buffer)
}

// Err - first error encountered
func (u *Unpacker) Err() error {
	return u.err
}
