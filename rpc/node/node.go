// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package node - daemon status RPC service
package node

import (
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/soulbound/counter"
	"github.com/bitmark-inc/soulbound/events"
	"github.com/bitmark-inc/soulbound/mode"
	"github.com/bitmark-inc/soulbound/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// limit for count
const maximumEventCount = 100

// Journal - the committed event log
type Journal interface {
	EventCount() uint64
	Events(start uint64, count int) ([]events.Record, error)
}

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Journal Journal
	counter *counter.Counter
}

// New - create the Node service
func New(log *logger.L, start time.Time, version string, counter *counter.Counter, journal Journal) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Journal: journal,
		counter: counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Network string `json:"network"`
	Mode    string `json:"mode"`
	RPCs    uint64 `json:"rpcs"`
	Events  uint64 `json:"events"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Network = mode.NetworkName()
	reply.Mode = mode.String()
	reply.RPCs = node.counter.Uint64()
	reply.Events = node.Journal.EventCount()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}

// EventsArguments - a page of the journal
type EventsArguments struct {
	Start uint64 `json:"start,string"`
	Count int    `json:"count"`
}

// EventsReply - committed events and where to continue
type EventsReply struct {
	Events    []events.Record `json:"events"`
	NextStart uint64          `json:"nextStart,string"`
}

// Events - committed events from a sequence number
func (node *Node) Events(arguments *EventsArguments, reply *EventsReply) error {
	if err := ratelimit.LimitN(node.Limiter, arguments.Count, maximumEventCount); nil != err {
		return err
	}

	records, err := node.Journal.Events(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Events = records
	reply.NextStart = arguments.Start
	if n := len(records); 0 != n {
		reply.NextStart = records[n-1].Sequence + 1
	}
	return nil
}
