// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/soulbound/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/var/lib/sbtd/data", util.EnsureAbsolute("/var/lib/sbtd", "data"), "relative")
	assert.Equal(t, "/tmp/x.leveldb", util.EnsureAbsolute("/var/lib/sbtd", "/tmp/x.leveldb"), "absolute")
	assert.Equal(t, "/var/lib/x", util.EnsureAbsolute("/var/lib/sbtd", "../x"), "cleaned")
	assert.Equal(t, "", util.EnsureAbsolute("/var/lib/sbtd", ""), "empty")
}
