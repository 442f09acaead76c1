// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/soulbound/command/sbt-cli/rpccalls"
)

// open a client for the global connect, caller and deposit flags
func connect(c *cli.Context) (*rpccalls.Client, *metadata, error) {
	m := c.App.Metadata["config"].(*metadata)

	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s\n", m.connect)
		fmt.Fprintf(m.e, "caller: %q  deposit: %q\n", m.caller, m.deposit)
	}

	client, err := rpccalls.NewClient(m.connect, m.caller, m.deposit, m.verbose, m.e)
	if nil != err {
		return nil, nil, err
	}
	return client, m, nil
}
