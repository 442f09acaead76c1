// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/soulbound/sbt"
)

func runAddIssuer(c *cli.Context) error {

	issuer, err := checkAccount("issuer", c.String("issuer"))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.AddIssuer(issuer, c.Bool("testing"))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runFlag(c *cli.Context) error {

	flag, err := sbt.ParseAccountFlag(c.String("flag"))
	if nil != err {
		return err
	}
	accounts, err := checkAccounts(splitList(c.StringSlice("account")))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	if err := client.Flag(flag, accounts); nil != err {
		return err
	}

	return printJson(m.w, accounts)
}

// Unflag, AddFlagger and RemoveFlagger share arguments
func accountsAction(method string) cli.ActionFunc {
	return func(c *cli.Context) error {

		accounts, err := checkAccounts(splitList(c.StringSlice("account")))
		if nil != err {
			return err
		}

		client, m, err := connect(c)
		if nil != err {
			return err
		}
		defer client.Close()

		if err := client.Accounts(method, accounts); nil != err {
			return err
		}

		return printJson(m.w, accounts)
	}
}

func runChangeAdmin(c *cli.Context) error {

	account, err := checkAccount("admin", c.String("account"))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	if err := client.ChangeAdmin(account); nil != err {
		return err
	}

	response, err := client.AdminInfo()
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runSetClassSet(c *cli.Context) error {

	issuer, err := checkAccount("issuer", c.String("issuer"))
	if nil != err {
		return err
	}
	classes, err := checkClasses(c.StringSlice("class"))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	if err := client.SetClassSet(issuer, classes); nil != err {
		return err
	}

	response, err := client.ClassSet()
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runAdminInfo(c *cli.Context) error {

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.AdminInfo()
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runAddMinter(c *cli.Context) error {

	minter, err := checkAccount("minter", c.String("account"))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	if err := client.AddMinter(minter); nil != err {
		return err
	}

	return printJson(m.w, minter)
}

func runTestingMint(c *cli.Context) error {

	issuer, err := checkAccount("issuer", c.String("issuer"))
	if nil != err {
		return err
	}
	specs, err := checkTokenSpecs(c)
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.TestingMint(issuer, specs)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runTestingRenew(c *cli.Context) error {

	issuer, err := checkAccount("issuer", c.String("issuer"))
	if nil != err {
		return err
	}
	ids, err := checkTokenIds(c.StringSlice("token"))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	if err := client.TestingRenew(issuer, ids, c.Uint64("expires-at")); nil != err {
		return err
	}

	return printJson(m.w, ids)
}
