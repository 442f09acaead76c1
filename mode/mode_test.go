// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/soulbound/fault"
	"github.com/bitmark-inc/soulbound/fixtures"
	"github.com/bitmark-inc/soulbound/mode"
)

func TestNetworks(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	items := []struct {
		network string
		testing bool
	}{
		{mode.Mainnet, false},
		{mode.Testnet, true},
		{mode.Local, true},
	}

	for _, item := range items {
		err := mode.Initialise(item.network)
		assert.Nil(t, err, "initialise: %s", item.network)
		assert.Equal(t, item.testing, mode.IsTesting(), "testing: %s", item.network)
		assert.Equal(t, item.network, mode.NetworkName(), "network")
		assert.True(t, mode.Is(mode.Starting), "starting: %s", mode.String())

		assert.Equal(t, fault.AlreadyInitialised, mode.Initialise(item.network), "second initialise")

		mode.Set(mode.Normal)
		assert.True(t, mode.Is(mode.Normal), "normal: %s", mode.String())

		assert.Nil(t, mode.Finalise(), "finalise: %s", item.network)
		assert.True(t, mode.Is(mode.Stopped), "stopped: %s", mode.String())
	}

	assert.Equal(t, fault.InvalidNetwork, mode.Initialise("betanet"), "unknown network")
	assert.Equal(t, fault.NotInitialised, mode.Finalise(), "finalise twice")
}
