// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/soulbound/background"
)

type ticker struct {
	ticks   int64
	stopped int32
}

func (p *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	interval := args.(time.Duration)
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(interval):
			atomic.AddInt64(&p.ticks, 1)
		}
	}
	atomic.StoreInt32(&p.stopped, 1)
}

func TestStartStop(t *testing.T) {
	p1 := &ticker{}
	p2 := &ticker{}

	b := background.Start(background.Processes{p1, p2}, time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	b.Stop()

	assert.Equal(t, int32(1), atomic.LoadInt32(&p1.stopped), "first not stopped")
	assert.Equal(t, int32(1), atomic.LoadInt32(&p2.stopped), "second not stopped")
	assert.NotZero(t, atomic.LoadInt64(&p1.ticks), "first never ran")
	assert.NotZero(t, atomic.LoadInt64(&p2.ticks), "second never ran")

	// counts are frozen after stop
	n := atomic.LoadInt64(&p1.ticks)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, n, atomic.LoadInt64(&p1.ticks), "ran after stop")

	// stopping again is harmless
	b.Stop()
}

func TestStartEmpty(t *testing.T) {
	b := background.Start(nil, nil)
	b.Stop()
}
