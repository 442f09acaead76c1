// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/soulbound/configuration"
	"github.com/bitmark-inc/soulbound/fault"
)

type section struct {
	Authority string   `gluamapper:"authority"`
	Classes   []uint64 `gluamapper:"iah_classes"`
	Limit     int      `gluamapper:"query_limit"`
}

type options struct {
	DataDirectory string            `gluamapper:"data_directory"`
	Network       string            `gluamapper:"network"`
	Registry      section           `gluamapper:"registry"`
	Levels        map[string]string `gluamapper:"levels"`
}

const script = `
local M = {}
local name = arg[0]
M.data_directory = name:match("(.*/)")
M.network = "testnet"
M.registry = {
    authority = "admin.near",
    iah_classes = { 1, 3 },
    query_limit = 10 * 100,
}
M.levels = {
    DEFAULT = "info",
    registry = "debug",
}
return M
`

func writeScript(t *testing.T, text string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration")
	if !assert.Nil(t, err, "temp dir") {
		t.FailNow()
	}
	fileName := filepath.Join(dir, "sbtd.conf")
	err = ioutil.WriteFile(fileName, []byte(text), 0600)
	assert.Nil(t, err, "write script")
	return fileName, func() { os.RemoveAll(dir) }
}

func TestParseConfigurationFile(t *testing.T) {
	fileName, cleanup := writeScript(t, script)
	defer cleanup()

	o := options{Registry: section{Limit: 5}}
	err := configuration.ParseConfigurationFile(fileName, &o)
	assert.Nil(t, err, "parse")

	assert.Equal(t, filepath.Dir(fileName)+"/", o.DataDirectory, "arg[0]")
	assert.Equal(t, "testnet", o.Network, "network")
	assert.Equal(t, "admin.near", o.Registry.Authority, "authority")
	assert.Equal(t, []uint64{1, 3}, o.Registry.Classes, "classes")
	assert.Equal(t, 1000, o.Registry.Limit, "computed value")
	assert.Equal(t, "debug", o.Levels["registry"], "levels")
}

func TestParseConfigurationFileErrors(t *testing.T) {
	o := options{}

	assert.Equal(t, fault.InvalidStructPointer, configuration.ParseConfigurationFile("x", o), "not a pointer")
	assert.Equal(t, fault.InvalidStructPointer, configuration.ParseConfigurationFile("x", (*options)(nil)), "nil pointer")
	assert.Equal(t, fault.ConfigurationFileMissing, configuration.ParseConfigurationFile("/nonexistent/sbtd.conf", &o), "missing file")

	fileName, cleanup := writeScript(t, `local x = 1`)
	defer cleanup()
	assert.Equal(t, fault.InvalidConfiguration, configuration.ParseConfigurationFile(fileName, &o), "no table")

	broken, cleanupBroken := writeScript(t, `return {`)
	defer cleanupBroken()
	assert.NotNil(t, configuration.ParseConfigurationFile(broken, &o), "syntax error")
}
