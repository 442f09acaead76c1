// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sbt - soulbound token values shared by the registry,
// its RPC services and the command line client
//
// A token is identified by its issuer and a token id that is only
// unique within that issuer. Stored token data carries an explicit
// metadata version byte so old records keep decoding after the
// metadata gains fields.
package sbt
