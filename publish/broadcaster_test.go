// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish_test

import (
	"encoding/binary"
	"testing"
	"time"

	zmq "github.com/pebbe/zmq4"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/soulbound/events"
	"github.com/bitmark-inc/soulbound/fault"
	"github.com/bitmark-inc/soulbound/fixtures"
	"github.com/bitmark-inc/soulbound/publish"
	"github.com/bitmark-inc/soulbound/sbt"
)

const endpoint = "127.0.0.1:21401"

func TestBroadcast(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := publish.Initialise(&publish.Configuration{Broadcast: []string{endpoint}})
	if !assert.Nil(t, err, "initialise") {
		return
	}
	defer publish.Finalise()

	assert.Equal(t, fault.AlreadyInitialised, publish.Initialise(&publish.Configuration{}), "second initialise")

	subscriber, err := zmq.NewSocket(zmq.SUB)
	if !assert.Nil(t, err, "subscriber") {
		return
	}
	defer subscriber.Close()
	subscriber.SetLinger(0)
	subscriber.SetRcvtimeo(20 * time.Millisecond)
	assert.Nil(t, subscriber.SetSubscribe(publish.Topic), "subscribe")
	assert.Nil(t, subscriber.Connect("tcp://"+endpoint), "connect")

	record := events.NewRecord(7, events.Renew(fixtures.Issuer1, []sbt.TokenId{1, 2}))
	sink := publish.Broadcaster()

	// a subscriber misses anything sent before its connection completes
	var parts []string
	for i := 0; i < 100 && nil == parts; i++ {
		sink.Publish([]events.Record{record})
		parts, _ = subscriber.RecvMessage(0)
	}

	if assert.Len(t, parts, 3, "message parts") {
		assert.Equal(t, publish.Topic, parts[0], "topic")
		assert.Equal(t, uint64(7), binary.BigEndian.Uint64([]byte(parts[1])), "sequence")
		assert.Equal(t, record.Text, parts[2], "text")
	}
}

func TestInitialiseErrors(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := publish.Initialise(&publish.Configuration{})
	assert.Equal(t, fault.MissingParameters, err, "no endpoints")

	err = publish.Initialise(&publish.Configuration{Broadcast: []string{"nowhere"}})
	assert.Equal(t, fault.InvalidIpAddress, err, "bad endpoint")

	err = publish.Initialise(&publish.Configuration{
		Broadcast:  []string{endpoint},
		PrivateKey: "/nonexistent/publish.private",
		PublicKey:  "/nonexistent/publish.public",
	})
	assert.NotNil(t, err, "missing key files")

	assert.Equal(t, fault.NotInitialised, publish.Finalise(), "finalise")
}
