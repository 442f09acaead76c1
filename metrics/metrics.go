// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bitmark-inc/soulbound/events"
	"github.com/bitmark-inc/soulbound/fault"
)

const namespace = "soulbound"

// Metrics - counters fed by the registry
type Metrics struct {
	registry *prometheus.Registry

	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	events   *prometheus.CounterVec
	sequence prometheus.Gauge
}

// New - a set of collectors on a private registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registry_calls_total",
			Help:      "Mutating registry calls by operation and result.",
		}, []string{"operation", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "registry_call_duration_seconds",
			Help:      "Time spent inside mutating registry calls.",
			Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
		}, []string{"operation"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Committed events by name.",
		}, []string{"event"}),
		sequence: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "event_sequence",
			Help:      "Sequence number of the last committed event.",
		}),
	}

	m.registry.MustRegister(m.calls, m.duration, m.events, m.sequence)
	return m
}

// Observe - record the outcome of one registry call
func (m *Metrics) Observe(operation string, err error, elapsed time.Duration) {
	m.calls.WithLabelValues(operation, result(err)).Inc()
	m.duration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// Publish - count committed events
func (m *Metrics) Publish(records []events.Record) {
	for _, record := range records {
		m.events.WithLabelValues(eventName(record.Text)).Inc()
		m.sequence.Set(float64(record.Sequence))
	}
}

// Handler - serve the collectors in prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func result(err error) string {
	switch {
	case nil == err:
		return "ok"
	case fault.IsErrPermission(err):
		return "permission"
	case fault.IsErrInvalid(err):
		return "invalid"
	case fault.IsErrExists(err):
		return "exists"
	case fault.IsErrNotFound(err):
		return "not_found"
	case fault.IsErrConsistency(err):
		return "consistency"
	case fault.IsErrRecord(err):
		return "record"
	default:
		return "process"
	}
}

func eventName(text string) string {
	var e struct {
		Event string `json:"event"`
	}
	if err := json.Unmarshal([]byte(strings.TrimPrefix(text, events.Prefix)), &e); nil != err || "" == e.Event {
		return "unknown"
	}
	return e.Event
}
