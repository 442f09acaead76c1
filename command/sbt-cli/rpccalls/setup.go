// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpccalls - typed client calls to sbtd
package rpccalls

import (
	"crypto/tls"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/bitmark-inc/soulbound/rpc/caller"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	caller  caller.Arguments
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a sbtd
//
// account and deposit are sent with every mutating call
func NewClient(connect string, account string, deposit string, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	return newClient(conn, account, deposit, verbose, handle), nil
}

func newClient(conn net.Conn, account string, deposit string, verbose bool, handle io.Writer) *Client {
	return &Client{
		conn:   conn,
		client: jsonrpc.NewClient(conn),
		caller: caller.Arguments{
			Caller:  account,
			Deposit: deposit,
		},
		verbose: verbose,
		handle:  handle,
	}
}

// Close - shutdown the sbtd connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

// call with the request and reply shown in verbose mode
func (c *Client) call(method string, arguments interface{}, reply interface{}) error {
	_ = c.printJson(method+" Request", arguments)

	if err := c.client.Call(method, arguments, reply); err != nil {
		return err
	}

	_ = c.printJson(method+" Reply", reply)
	return nil
}
