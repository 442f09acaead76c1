// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/soulbound/rpc/node"
)

// GetInfo - request status from sbtd
func (c *Client) GetInfo() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := c.call("Node.Info", &node.InfoArguments{}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// GetEvents - a page of the event journal
func (c *Client) GetEvents(start uint64, count int) (*node.EventsReply, error) {
	arguments := node.EventsArguments{
		Start: start,
		Count: count,
	}
	var reply node.EventsReply
	if err := c.call("Node.Events", &arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
