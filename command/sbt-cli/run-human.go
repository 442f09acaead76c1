// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runIsHuman(c *cli.Context) error {

	account, err := checkAccount("", c.String("account"))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.IsHuman(account)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runHumanCall(c *cli.Context) error {

	contract, err := checkAccount("contract", c.String("contract"))
	if nil != err {
		return err
	}
	function := c.String("function")
	if "" == function {
		return fmt.Errorf("function is required")
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.HumanCall(contract, function, c.String("payload"), c.Uint64("lock"), c.Bool("with-proof"))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runBanned(c *cli.Context) error {

	account, err := checkAccount("", c.String("account"))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Banned(account)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runFlagged(c *cli.Context) error {

	account, err := checkAccount("", c.String("account"))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Flagged(account)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runClassSet(c *cli.Context) error {

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.ClassSet()
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
