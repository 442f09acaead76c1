// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sbt

import (
	"math/big"
	"strings"

	"github.com/holiman/uint256"

	"github.com/bitmark-inc/soulbound/fault"
)

// yoctoNEAR scale
const (
	nearDecimals = 24
	milliScale   = 21
)

var (
	oneNEAR      = exp10(nearDecimals)
	oneMilliNEAR = exp10(milliScale)
)

func exp10(n uint64) *uint256.Int {
	return new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(n))
}

// MilliNEAR - n thousandths of a NEAR in yoctoNEAR
func MilliNEAR(n uint64) *uint256.Int {
	return new(uint256.Int).Mul(uint256.NewInt(n), oneMilliNEAR)
}

// Yocto - an amount in yoctoNEAR
func Yocto(n uint64) *uint256.Int {
	return uint256.NewInt(n)
}

// ParseYocto - decimal yoctoNEAR text, empty means zero
func ParseYocto(s string) (*uint256.Int, error) {
	if "" == s {
		return new(uint256.Int), nil
	}
	b, ok := new(big.Int).SetString(s, 10)
	if !ok || b.Sign() < 0 {
		return nil, fault.InvalidError("invalid yoctoNEAR amount: " + s)
	}
	n, overflow := uint256.FromBig(b)
	if overflow {
		return nil, fault.InvalidError("yoctoNEAR amount too large: " + s)
	}
	return n, nil
}

// FormatYocto - decimal yoctoNEAR text
func FormatYocto(n *uint256.Int) string {
	return n.ToBig().String()
}

// FormatNEAR - decimal NEAR with trailing zeros removed
func FormatNEAR(n *uint256.Int) string {
	whole := new(uint256.Int).Div(n, oneNEAR)
	fraction := new(uint256.Int).Mod(n, oneNEAR)
	if fraction.IsZero() {
		return whole.ToBig().String()
	}
	f := fraction.ToBig().String()
	f = strings.Repeat("0", nearDecimals-len(f)) + f
	return whole.ToBig().String() + "." + strings.TrimRight(f, "0")
}
