// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/soulbound/registry"
	"github.com/bitmark-inc/soulbound/rpc/tokens"
	"github.com/bitmark-inc/soulbound/sbt"
)

func runMint(c *cli.Context) error {

	specs, err := checkTokenSpecs(c)
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Mint(specs, optionalString(c, "memo"))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runRenew(c *cli.Context) error {

	ids, err := checkTokenIds(c.StringSlice("token"))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	if err := client.Renew(ids, c.Uint64("expires-at")); nil != err {
		return err
	}

	return printJson(m.w, ids)
}

func runRevoke(c *cli.Context) error {

	ids, err := checkTokenIds(c.StringSlice("token"))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	if err := client.Revoke(ids, c.Bool("burn")); nil != err {
		return err
	}

	return printJson(m.w, ids)
}

func runSoulTransfer(c *cli.Context) error {

	recipient, err := checkAccount("recipient", c.String("to"))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.SoulTransfer(recipient, c.Int("limit"), optionalString(c, "memo"))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runRecover(c *cli.Context) error {

	from, err := checkAccount("from", c.String("from"))
	if nil != err {
		return err
	}
	to, err := checkAccount("to", c.String("to"))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Recover(from, to, c.Int("limit"), optionalString(c, "memo"))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runBurnAll(c *cli.Context) error {

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.BurnAll(c.Int("limit"))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runToken(c *cli.Context) error {

	issuer, err := checkAccount("issuer", c.String("issuer"))
	if nil != err {
		return err
	}
	ids, err := checkTokenIds([]string{c.String("token")})
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Token(issuer, ids[0])
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runTokens(c *cli.Context) error {

	issuer, err := checkAccount("issuer", c.String("issuer"))
	if nil != err {
		return err
	}

	query := registry.TokensQuery{
		Issuer:      issuer,
		Limit:       optionalUint32(c, "limit"),
		WithExpired: c.Bool("with-expired"),
	}
	if c.IsSet("from") {
		from := sbt.TokenId(c.Uint64("from"))
		query.FromToken = &from
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Tokens(query)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runOwned(c *cli.Context) error {

	account, err := checkAccount("owner", c.String("account"))
	if nil != err {
		return err
	}

	query := registry.OwnerQuery{
		Account:     account,
		Issuer:      optionalString(c, "issuer"),
		Limit:       optionalUint32(c, "limit"),
		WithExpired: c.Bool("with-expired"),
	}
	if c.IsSet("from-class") {
		class := sbt.ClassId(c.Uint64("from-class"))
		query.FromClass = &class
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.TokensByOwner(query)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

// supply of an issuer, of one class or held by one account
func runSupply(c *cli.Context) error {

	issuer, err := checkAccount("issuer", c.String("issuer"))
	if nil != err {
		return err
	}

	arguments := tokens.SupplyArguments{
		Issuer:  issuer,
		Account: c.String("account"),
	}
	if c.IsSet("class") {
		class := sbt.ClassId(c.Uint64("class"))
		arguments.Class = &class
	}

	method := "Supply"
	switch {
	case "" != arguments.Account:
		if _, err := checkAccount("owner", arguments.Account); nil != err {
			return err
		}
		method = "SupplyByOwner"
	case nil != arguments.Class:
		method = "SupplyByClass"
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Supply(method, arguments)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runIssuers(c *cli.Context) error {

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Issuers()
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
