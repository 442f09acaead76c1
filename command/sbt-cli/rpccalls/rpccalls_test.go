// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"bytes"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/soulbound/counter"
	"github.com/bitmark-inc/soulbound/fixtures"
	"github.com/bitmark-inc/soulbound/mode"
	"github.com/bitmark-inc/soulbound/registry"
	"github.com/bitmark-inc/soulbound/rpc/server"
	"github.com/bitmark-inc/soulbound/rpc/tokens"
	"github.com/bitmark-inc/soulbound/sbt"
	"github.com/bitmark-inc/soulbound/storage"
)

const mintDeposit = "9000000000000000000000"

type testDaemon struct {
	t       *testing.T
	db      *storage.Database
	server  *rpc.Server
	clients []*Client
}

func setup(t *testing.T) *testDaemon {
	fixtures.SetupTestLogger()

	db, err := storage.OpenMemory()
	if !assert.Nil(t, err, "open database") {
		t.FailNow()
	}
	reg, err := registry.New(logger.New(fixtures.LogCategory), db, &registry.Configuration{
		Authority: fixtures.Authority,
	}, mode.IsTesting)
	if !assert.Nil(t, err, "registry") {
		t.FailNow()
	}

	_ = mode.Initialise(mode.Local)
	mode.Set(mode.Normal)

	c := counter.Counter(0)
	return &testDaemon{
		t:      t,
		db:     db,
		server: server.Create(logger.New(fixtures.LogCategory), "1.0", &c, reg),
	}
}

// a client for one account served over a pipe
func (d *testDaemon) client(account string, deposit string, verbose *bytes.Buffer) *Client {
	serverConn, clientConn := net.Pipe()
	go d.server.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	c := newClient(clientConn, account, deposit, nil != verbose, verbose)
	d.clients = append(d.clients, c)
	return c
}

func (d *testDaemon) teardown() {
	for _, c := range d.clients {
		c.Close()
	}
	_ = mode.Finalise()
	d.db.Close()
	fixtures.TeardownTestLogger()
}

func TestMintAndQuery(t *testing.T) {
	d := setup(t)
	defer d.teardown()

	admin := d.client(fixtures.Authority, "", nil)
	added, err := admin.AddIssuer(fixtures.Issuer1, false)
	if assert.Nil(t, err, "add issuer") {
		assert.True(t, added.Added, "added")
	}

	issuer := d.client(fixtures.Issuer1, mintDeposit, nil)
	minted, err := issuer.Mint([]sbt.TokenSpec{{
		Owner:    fixtures.Alice,
		Metadata: []sbt.TokenMetadata{{Class: 1}},
	}}, nil)
	if !assert.Nil(t, err, "mint") {
		return
	}
	assert.Equal(t, []sbt.TokenId{1}, minted.Tokens, "minted")

	token, err := issuer.Token(fixtures.Issuer1, 1)
	if assert.Nil(t, err, "token") && assert.NotNil(t, token.Token, "token") {
		assert.Equal(t, fixtures.Alice, token.Token.Owner, "owner")
	}

	supply, err := issuer.Supply("Supply", tokensSupply(fixtures.Issuer1))
	assert.Nil(t, err, "supply")
	assert.Equal(t, uint64(1), supply.Supply, "supply")

	issuers, err := issuer.Issuers()
	assert.Nil(t, err, "issuers")
	assert.Equal(t, []string{fixtures.Issuer1}, issuers.Issuers, "issuers")

	page, err := issuer.GetEvents(0, 10)
	if assert.Nil(t, err, "events") && assert.Len(t, page.Events, 1, "events") {
		assert.Contains(t, page.Events[0].Text, `"event":"sbt_mint"`, "mint event")
	}
}

func TestPermissionError(t *testing.T) {
	d := setup(t)
	defer d.teardown()

	bob := d.client(fixtures.Bob, "", nil)
	_, err := bob.AddIssuer(fixtures.Issuer1, false)
	assert.NotNil(t, err, "not admin")

	info, err := bob.AdminInfo()
	assert.Nil(t, err, "admin info")
	assert.Equal(t, fixtures.Authority, info.Authority, "authority")
}

func TestVerbose(t *testing.T) {
	d := setup(t)
	defer d.teardown()

	buffer := &bytes.Buffer{}
	c := d.client(fixtures.Alice, "", buffer)

	_, err := c.GetInfo()
	assert.Nil(t, err, "info")
	assert.Contains(t, buffer.String(), "Node.Info Request:", "request")
	assert.Contains(t, buffer.String(), "Node.Info Reply:", "reply")
}

func tokensSupply(issuer string) tokens.SupplyArguments {
	return tokens.SupplyArguments{Issuer: issuer}
}
