// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/soulbound/counter"
	"github.com/bitmark-inc/soulbound/events"
	"github.com/bitmark-inc/soulbound/fault"
	"github.com/bitmark-inc/soulbound/fixtures"
	"github.com/bitmark-inc/soulbound/mode"
	"github.com/bitmark-inc/soulbound/rpc/mocks"
	"github.com/bitmark-inc/soulbound/rpc/node"
	"github.com/bitmark-inc/soulbound/sbt"
)

func TestInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_ = mode.Initialise(mode.Testnet)
	defer mode.Finalise()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	j := mocks.NewMockJournal(ctl)
	j.EXPECT().EventCount().Return(uint64(12)).Times(1)

	c := counter.Counter(3)
	n := node.New(logger.New(fixtures.LogCategory), time.Now().Add(-time.Minute), "1.2.3", &c, j)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, mode.Testnet, reply.Network, "wrong network")
	assert.Equal(t, "Starting", reply.Mode, "wrong mode")
	assert.Equal(t, uint64(3), reply.RPCs, "wrong rpcs")
	assert.Equal(t, uint64(12), reply.Events, "wrong events")
	assert.Equal(t, "1.2.3", reply.Version, "wrong version")
	assert.NotEmpty(t, reply.Uptime, "wrong uptime")
}

func TestEvents(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	records := []events.Record{
		events.NewRecord(5, events.Renew(fixtures.Issuer1, []sbt.TokenId{1})),
		events.NewRecord(6, events.Revoke(fixtures.Issuer1, []sbt.TokenId{1})),
	}

	j := mocks.NewMockJournal(ctl)
	j.EXPECT().Events(uint64(5), 2).Return(records, nil).Times(1)
	j.EXPECT().Events(uint64(7), 10).Return([]events.Record{}, nil).Times(1)

	c := counter.Counter(0)
	n := node.New(logger.New(fixtures.LogCategory), time.Now(), "1.2.3", &c, j)

	var reply node.EventsReply
	err := n.Events(&node.EventsArguments{Start: 5, Count: 2}, &reply)
	assert.Nil(t, err, "wrong Events")
	assert.Equal(t, records, reply.Events, "wrong events")
	assert.Equal(t, uint64(7), reply.NextStart, "wrong next")

	reply = node.EventsReply{}
	err = n.Events(&node.EventsArguments{Start: 7, Count: 10}, &reply)
	assert.Nil(t, err, "wrong empty Events")
	assert.Equal(t, uint64(7), reply.NextStart, "next moved")

	err = n.Events(&node.EventsArguments{Start: 7, Count: 1000}, &reply)
	assert.Equal(t, fault.InvalidCount, err, "count too large")
}
