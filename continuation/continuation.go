// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package continuation - progress of a multi-call batch operation
//
// A soul transfer or a recovery may need more calls than a single
// call's work limit allows. Each call is one step of a small state
// machine:
//
//   Idle --Start--> InProgress --Pause--> InProgress
//                   InProgress --Finish-> Idle
//
// The machine holds no storage; the registry persists the resume
// point between calls and rebuilds the machine with Resume.
package continuation

import (
	"github.com/bitmark-inc/soulbound/fault"
)

// State - of one account's operation
type State byte

// possible states
const (
	Idle State = iota
	InProgress
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case InProgress:
		return "InProgress"
	default:
		return "*unknown*"
	}
}

// Machine - state for the duration of one call
type Machine struct {
	state   State
	resumed bool
	moved   int
}

// Start - first call for an account that had no record
func Start() *Machine {
	return &Machine{
		state: InProgress,
	}
}

// Resume - a call continuing from a recorded resume point
func Resume() *Machine {
	return &Machine{
		state:   InProgress,
		resumed: true,
	}
}

// State - current state
func (m *Machine) State() State {
	return m.state
}

// Resumed - true if an earlier call paused this operation
func (m *Machine) Resumed() bool {
	return m.resumed
}

// Moved - items processed by this call
func (m *Machine) Moved() int {
	return m.moved
}

// Step - decide the work for this call
//
// available is the number of items found at the resume point when
// asking for limit+1 of them; returns how many to process now and
// whether the source is exhausted once they are processed
func (m *Machine) Step(available int, limit int) (int, bool, error) {
	if InProgress != m.state {
		return 0, false, fault.ProcessError("continuation step while " + m.state.String())
	}
	if limit <= 0 {
		return 0, false, fault.InvalidLimit
	}
	if available <= limit {
		m.moved = available
		return available, true, nil
	}
	m.moved = limit
	return limit, false, nil
}

// Pause - work remains, the caller must persist the resume point
func (m *Machine) Pause() error {
	if InProgress != m.state {
		return fault.ProcessError("continuation pause while " + m.state.String())
	}
	m.resumed = true
	return nil
}

// Finish - source exhausted, the caller must delete the resume point
//
// returns true if completion must be announced: always when
// announceEmpty is set, otherwise only if anything was ever moved
func (m *Machine) Finish(announceEmpty bool) (bool, error) {
	if InProgress != m.state {
		return false, fault.ProcessError("continuation finish while " + m.state.String())
	}
	m.state = Idle
	return announceEmpty || m.resumed || m.moved > 0, nil
}
