// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metrics - prometheus counters for registry calls and events
package metrics

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/soulbound/background"
	"github.com/bitmark-inc/soulbound/fault"
)

// Path - where the collectors are served
const Path = "/metrics"

const shutdownTimeout = 5 * time.Second

// Configuration - a block of configuration data
// this is read from a Lua configuration file
type Configuration struct {
	Listen string `gluamapper:"listen" json:"listen"`
}

type metricsData struct {
	sync.RWMutex

	log *logger.L

	metrics *Metrics
	server  server

	background *background.T

	// set once during initialise
	initialised bool
}

var globalData metricsData

// Initialise - create the collectors and serve them over HTTP
func Initialise(configuration *Configuration) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("metrics")
	globalData.log.Info("starting…")

	if "" == configuration.Listen {
		return fault.MissingParameters
	}

	listener, err := net.Listen("tcp", configuration.Listen)
	if nil != err {
		globalData.log.Errorf("listen: %q  error: %s", configuration.Listen, err)
		return err
	}
	globalData.log.Infof("serving on: %s%s", listener.Addr(), Path)

	globalData.metrics = New()

	mux := http.NewServeMux()
	mux.Handle(Path, globalData.metrics.Handler())

	globalData.server = server{
		log:      globalData.log,
		listener: listener,
		http: &http.Server{
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
	}

	globalData.initialised = true

	globalData.background = background.Start(background.Processes{&globalData.server}, nil)

	return nil
}

// Finalise - stop serving
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.background.Stop()

	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// Collector - the running metrics, nil before Initialise
func Collector() *Metrics {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.metrics
}

type server struct {
	log      *logger.L
	listener net.Listener
	http     *http.Server
}

func (s *server) Run(args interface{}, shutdown <-chan struct{}) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := s.http.Serve(s.listener); nil != err && http.ErrServerClosed != err {
			s.log.Errorf("serve error: %s", err)
		}
	}()

	<-shutdown

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(ctx); nil != err {
		s.log.Errorf("shutdown error: %s", err)
	}
	<-done
}
