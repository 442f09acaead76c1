// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics_test

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/soulbound/events"
	"github.com/bitmark-inc/soulbound/fault"
	"github.com/bitmark-inc/soulbound/fixtures"
	"github.com/bitmark-inc/soulbound/metrics"
	"github.com/bitmark-inc/soulbound/sbt"
)

func scrape(t *testing.T, m *metrics.Metrics) string {
	server := httptest.NewServer(m.Handler())
	defer server.Close()

	response, err := http.Get(server.URL)
	if !assert.Nil(t, err, "get") {
		return ""
	}
	defer response.Body.Close()

	body, err := ioutil.ReadAll(response.Body)
	assert.Nil(t, err, "read body")
	return string(body)
}

func TestObserve(t *testing.T) {
	m := metrics.New()

	m.Observe("sbt_mint", nil, time.Millisecond)
	m.Observe("sbt_mint", nil, time.Millisecond)
	m.Observe("sbt_mint", fault.NotAnIssuer, time.Millisecond)
	m.Observe("sbt_soul_transfer", fault.TransferLocked, time.Millisecond)
	m.Observe("admin_flag", fault.ProcessError("disk full"), time.Millisecond)

	body := scrape(t, m)
	assert.Contains(t, body, `soulbound_registry_calls_total{operation="sbt_mint",result="ok"} 2`, "ok")
	assert.Contains(t, body, `soulbound_registry_calls_total{operation="sbt_mint",result="permission"} 1`, "permission")
	assert.Contains(t, body, `soulbound_registry_calls_total{operation="sbt_soul_transfer",result="consistency"} 1`, "consistency")
	assert.Contains(t, body, `soulbound_registry_calls_total{operation="admin_flag",result="process"} 1`, "process")
	assert.Contains(t, body, `soulbound_registry_call_duration_seconds_count{operation="sbt_mint"} 3`, "duration")
}

func TestPublish(t *testing.T) {
	m := metrics.New()

	m.Publish([]events.Record{
		events.NewRecord(1, events.Renew(fixtures.Issuer1, []sbt.TokenId{1})),
		events.NewRecord(2, events.Revoke(fixtures.Issuer1, []sbt.TokenId{1})),
		events.NewRecord(3, events.Renew(fixtures.Issuer2, []sbt.TokenId{4})),
		{Sequence: 4, Text: "garbage"},
	})

	body := scrape(t, m)
	assert.Contains(t, body, `soulbound_events_total{event="sbt_renew"} 2`, "renew")
	assert.Contains(t, body, `soulbound_events_total{event="sbt_revoke"} 1`, "revoke")
	assert.Contains(t, body, `soulbound_events_total{event="unknown"} 1`, "unknown")
	assert.True(t, strings.Contains(body, "soulbound_event_sequence 4"), "sequence")
}

func TestInitialise(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	assert.Equal(t, fault.MissingParameters, metrics.Initialise(&metrics.Configuration{}), "no listen")

	err := metrics.Initialise(&metrics.Configuration{Listen: "127.0.0.1:0"})
	if !assert.Nil(t, err, "initialise") {
		return
	}

	m := metrics.Collector()
	if assert.NotNil(t, m, "collector") {
		m.Observe("sbt_renew", nil, time.Millisecond)
		assert.Contains(t, scrape(t, m), `soulbound_registry_calls_total{operation="sbt_renew",result="ok"} 1`, "counter")
	}

	assert.Equal(t, fault.AlreadyInitialised, metrics.Initialise(&metrics.Configuration{Listen: "127.0.0.1:0"}), "twice")
	assert.Nil(t, metrics.Finalise(), "finalise")
	assert.Equal(t, fault.NotInitialised, metrics.Finalise(), "finalise twice")
}
