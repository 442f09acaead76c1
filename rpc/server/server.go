// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server - the RPC server with every service registered
package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/soulbound/counter"
	"github.com/bitmark-inc/soulbound/mode"
	"github.com/bitmark-inc/soulbound/registry"
	"github.com/bitmark-inc/soulbound/rpc/admin"
	"github.com/bitmark-inc/soulbound/rpc/caller"
	"github.com/bitmark-inc/soulbound/rpc/human"
	"github.com/bitmark-inc/soulbound/rpc/node"
	"github.com/bitmark-inc/soulbound/rpc/tokens"
)

// Create - a server shared by the RPC and HTTPS listeners
func Create(log *logger.L, version string, rpcCount *counter.Counter, reg *registry.Registry) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(tokens.New(log, mode.Is, reg, caller.Now))
	_ = server.Register(human.New(log, mode.Is, reg, caller.Now))
	_ = server.Register(admin.New(log, mode.Is, reg, caller.Now))
	_ = server.Register(node.New(log, start, version, rpcCount, reg))

	return server
}
