// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package continuation

import (
	"github.com/bitmark-inc/soulbound/fault"
	"github.com/bitmark-inc/soulbound/sbt"
	"github.com/bitmark-inc/soulbound/util"
)

// TransferPoint - last balance entry moved by a soul transfer
//
// a soul transfer walks every issuer so it records both parts
type TransferPoint struct {
	Issuer sbt.IssuerId
	Class  sbt.ClassId
}

// RecoveryPoint - last balance entry moved by a recovery
//
// a recovery stays within the calling issuer
type RecoveryPoint struct {
	Class sbt.ClassId
}

// SoulTransfer - persisted record of an unfinished soul transfer
type SoulTransfer struct {
	Recipient string
	Last      TransferPoint
}

// Pack - recipient ++ issuer ++ class
func (s SoulTransfer) Pack() []byte {
	p := util.Packed{}
	p = p.AppendString(s.Recipient)
	p = p.AppendUint64(uint64(s.Last.Issuer))
	return p.AppendUint64(uint64(s.Last.Class))
}

// UnpackSoulTransfer - decode a persisted soul transfer
func UnpackSoulTransfer(buffer []byte) (SoulTransfer, error) {
	u := util.NewUnpacker(buffer)
	s := SoulTransfer{
		Recipient: u.String(),
		Last: TransferPoint{
			Issuer: sbt.IssuerId(u.Uint64()),
			Class:  sbt.ClassId(u.Uint64()),
		},
	}
	if !u.Done() {
		return SoulTransfer{}, fault.InvalidRecord
	}
	return s, nil
}

// Recovery - persisted record of an unfinished recovery
type Recovery struct {
	Recipient string
	Last      RecoveryPoint
}

// Pack - recipient ++ class
func (r Recovery) Pack() []byte {
	p := util.Packed{}
	p = p.AppendString(r.Recipient)
	return p.AppendUint64(uint64(r.Last.Class))
}

// UnpackRecovery - decode a persisted recovery
func UnpackRecovery(buffer []byte) (Recovery, error) {
	u := util.NewUnpacker(buffer)
	r := Recovery{
		Recipient: u.String(),
		Last: RecoveryPoint{
			Class: sbt.ClassId(u.Uint64()),
		},
	}
	if !u.Done() {
		return Recovery{}, fault.InvalidRecord
	}
	return r, nil
}
