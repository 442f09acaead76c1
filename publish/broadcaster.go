// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"time"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/soulbound/events"
)

// Topic - first frame of every broadcast message
const Topic = "events"

const (
	zapDomain         = "publish"
	queueSize         = 1000
	heartbeatInterval = 15 * time.Second
	heartbeatTimeout  = 60 * time.Second
	heartbeatTTL      = 120 * time.Second
)

type broadcaster struct {
	log     *logger.L
	socket4 *zmq.Socket
	socket6 *zmq.Socket
	queue   chan events.Record
}

// curve keys are optional; without them the socket is plain text
func (brdc *broadcaster) initialise(log *logger.L, privateKey []byte, publicKey []byte, broadcast []string) error {
	brdc.log = log
	brdc.queue = make(chan events.Record, queueSize)

	for i, address := range broadcast {
		bindTo, v6, err := canonicalEndpoint(address)
		if nil != err {
			log.Errorf("broadcast[%d]: %q  error: %s", i, address, err)
			brdc.close()
			return err
		}

		socket := brdc.socket4
		if v6 {
			socket = brdc.socket6
		}
		if nil == socket {
			socket, err = newPublisher(privateKey, publicKey, v6)
			if nil != err {
				brdc.close()
				return err
			}
			if v6 {
				brdc.socket6 = socket
			} else {
				brdc.socket4 = socket
			}
		}

		if err := socket.Bind(bindTo); nil != err {
			log.Errorf("cannot bind[%d]: %q  error: %s", i, bindTo, err)
			brdc.close()
			return err
		}
		log.Infof("bind[%d]: %q  IPv6: %v", i, bindTo, v6)
	}
	return nil
}

func newPublisher(privateKey []byte, publicKey []byte, v6 bool) (*zmq.Socket, error) {
	socket, err := zmq.NewSocket(zmq.PUB)
	if nil != err {
		return nil, err
	}

	if 0 != len(privateKey) {
		// any subscriber that knows the server public key may connect
		zmq.AuthCurveAdd(zapDomain, zmq.CURVE_ALLOW_ANY)
		socket.SetCurveServer(1)
		socket.SetCurveSecretkey(string(privateKey))
		socket.SetZapDomain(zapDomain)
		socket.SetIdentity(string(publicKey))
	}

	socket.SetIpv6(v6)
	socket.SetLinger(0)

	socket.SetHeartbeatIvl(heartbeatInterval)
	socket.SetHeartbeatTimeout(heartbeatTimeout)
	socket.SetHeartbeatTtl(heartbeatTTL)

	return socket, nil
}

// Publish - queue committed records without blocking the caller
func (brdc *broadcaster) Publish(records []events.Record) {
	for _, record := range records {
		select {
		case brdc.queue <- record:
		default:
			brdc.log.Warnf("queue full, dropped event: %d", record.Sequence)
		}
	}
}

// Run - send queued records until shutdown
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {
	log := brdc.log
	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case record := <-brdc.queue:
			brdc.send(record)
		}
	}

	brdc.close()
	log.Info("stopped")
}

func (brdc *broadcaster) send(record events.Record) {
	for _, socket := range []*zmq.Socket{brdc.socket4, brdc.socket6} {
		if nil == socket {
			continue
		}
		if _, err := socket.SendMessage(Topic, record.Key(), record.Text); nil != err {
			brdc.log.Errorf("send event: %d  error: %s", record.Sequence, err)
		}
	}
	brdc.log.Debugf("sent event: %d", record.Sequence)
}

func (brdc *broadcaster) close() {
	if nil != brdc.socket4 {
		brdc.socket4.Close()
		brdc.socket4 = nil
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
		brdc.socket6 = nil
	}
}
