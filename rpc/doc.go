// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - set up the listeners that accept JSON RPC requests
// from clients of the soulbound registry
//
// client_rpc serves one JSON RPC codec per TLS connection and
// https_rpc serves single requests by POST to /sbtd/rpc; both share
// the services created by rpc/server
//
// standard golang RPC services can be used on the client side to
// access these services
package rpc
