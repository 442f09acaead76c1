// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

// periodic memory report, run as a background process
type memoryStats struct {
	log *logger.L
}

func (m *memoryStats) Run(args interface{}, shutdown <-chan struct{}) {
	reg, _ := args.(statsSource)

	ticker := time.NewTicker(statsDelay)
	defer ticker.Stop()

loop:
	for {
		var stats runtime.MemStats
		runtime.ReadMemStats(&stats)

		a := stats.Alloc / mega
		t := stats.TotalAlloc / mega
		s := stats.Sys / mega
		m.log.Infof("allocated: %d M  cumulative: %d M  OS virtual: %d M  goroutines: %d", a, t, s, runtime.NumGoroutine())
		if nil != reg {
			m.log.Infof("events: %d", reg.EventCount())
		}

		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
		}
	}
}

type statsSource interface {
	EventCount() uint64
}
