// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"fmt"
	"sync"
	"time"

	"github.com/holiman/uint256"

	"github.com/bitmark-inc/soulbound/events"
	"github.com/bitmark-inc/soulbound/fault"
	"github.com/bitmark-inc/soulbound/sbt"
	"github.com/bitmark-inc/soulbound/storage"
	"github.com/bitmark-inc/logger"
)

// defaults for unset configuration
const (
	DefaultMintCostMilliNEAR = 9
	DefaultByteCost          = "10000000000000000000" // yoctoNEAR per byte
	DefaultQueryLimit        = 1000
	DefaultBatchLimit        = 25
)

// Configuration - a block of configuration data
// this is read from a Lua configuration file
//
// authority, iah and the role lists only seed an empty database;
// afterwards the stored values are changed by admin calls
type Configuration struct {
	Authority  string   `gluamapper:"authority" json:"authority"`
	IAHIssuer  string   `gluamapper:"iah_issuer" json:"iah_issuer"`
	IAHClasses []uint64 `gluamapper:"iah_classes" json:"iah_classes"`
	Flaggers   []string `gluamapper:"authorized_flaggers" json:"authorized_flaggers"`
	Minters    []string `gluamapper:"admin_minters" json:"admin_minters"`
	MintCost   string   `gluamapper:"mint_cost" json:"mint_cost"`
	ByteCost   string   `gluamapper:"byte_cost" json:"byte_cost"`
	QueryLimit int      `gluamapper:"query_limit" json:"query_limit"`
	BatchLimit int      `gluamapper:"batch_limit" json:"batch_limit"`
}

// Call - the environment of one registry call
//
// Caller is the authenticated account making the call, Deposit the
// attached yoctoNEAR and Now the call time in unix milliseconds
type Call struct {
	Caller  string
	Deposit *uint256.Int
	Now     uint64
}

// Observer - receives the outcome of every mutating call
type Observer interface {
	Observe(operation string, err error, elapsed time.Duration)
}

// Registry - the soulbound token ledger
//
// mutating calls are serialized and each runs inside one storage
// transaction; queries share a read lock so they never see a
// partially applied call
type Registry struct {
	sync.RWMutex

	log   *logger.L
	db    *storage.Database
	pools *storage.Pools

	mintCost   *uint256.Int
	byteCost   *uint256.Int
	queryLimit int
	batchLimit int

	isTesting func() bool

	sinks     []events.Sink
	observers []Observer
}

// New - open the registry over a database
//
// an empty database is seeded from the configuration
func New(log *logger.L, db *storage.Database, configuration *Configuration, isTesting func() bool) (*Registry, error) {
	if nil == log || nil == db || nil == configuration {
		return nil, fault.MissingParameters
	}

	r := &Registry{
		log:        log,
		db:         db,
		pools:      &db.Pool,
		queryLimit: configuration.QueryLimit,
		batchLimit: configuration.BatchLimit,
		isTesting:  isTesting,
	}
	if r.queryLimit <= 0 {
		r.queryLimit = DefaultQueryLimit
	}
	if r.batchLimit <= 0 {
		r.batchLimit = DefaultBatchLimit
	}
	if nil == r.isTesting {
		r.isTesting = func() bool { return false }
	}

	var err error
	if "" == configuration.MintCost {
		r.mintCost = sbt.MilliNEAR(DefaultMintCostMilliNEAR)
	} else if r.mintCost, err = sbt.ParseYocto(configuration.MintCost); nil != err {
		return nil, err
	}
	byteCost := configuration.ByteCost
	if "" == byteCost {
		byteCost = DefaultByteCost
	}
	if r.byteCost, err = sbt.ParseYocto(byteCost); nil != err {
		return nil, err
	}

	if nil == r.pools.Registry.Get(authorityKey) {
		if err := r.seed(configuration); nil != err {
			return nil, err
		}
	} else if "" != configuration.Authority && configuration.Authority != r.Authority() {
		log.Warnf("configured authority: %q ignored, stored authority: %q", configuration.Authority, r.Authority())
	}

	log.Infof("authority: %q", r.Authority())
	log.Infof("mint cost: %s yoctoNEAR  byte cost: %s yoctoNEAR", sbt.FormatYocto(r.mintCost), sbt.FormatYocto(r.byteCost))

	return r, nil
}

// first start on an empty database
func (r *Registry) seed(configuration *Configuration) error {
	if err := sbt.ValidateAccount(configuration.Authority); nil != err {
		r.log.Errorf("invalid authority: %q", configuration.Authority)
		return err
	}

	trx, err := r.db.Begin()
	if nil != err {
		return err
	}

	trx.Put(r.pools.Registry, authorityKey, []byte(configuration.Authority))
	trx.PutN(r.pools.Registry, nextIssuerKey, 1)

	if "" != configuration.IAHIssuer {
		classes := make([]sbt.ClassId, len(configuration.IAHClasses))
		for i, c := range configuration.IAHClasses {
			classes[i] = sbt.ClassId(c)
		}
		err = validateClassSet(configuration.IAHIssuer, classes)
		if nil == err {
			trx.Put(r.pools.Registry, iahKey, packClassSet(configuration.IAHIssuer, classes))
		}
	}
	for _, a := range configuration.Flaggers {
		if nil == err {
			err = sbt.ValidateAccount(a)
		}
		trx.Put(r.pools.Flaggers, accountKey(a), []byte{1})
	}
	for _, a := range configuration.Minters {
		if nil == err {
			err = sbt.ValidateAccount(a)
		}
		trx.Put(r.pools.Minters, accountKey(a), []byte{1})
	}

	if nil != err {
		trx.Abort()
		return err
	}

	r.log.Infof("initialised empty registry for authority: %q", configuration.Authority)
	return trx.Commit()
}

// AddSink - receive every committed event
func (r *Registry) AddSink(sink events.Sink) {
	r.Lock()
	defer r.Unlock()
	r.sinks = append(r.sinks, sink)
}

// AddObserver - receive the outcome of every mutating call
func (r *Registry) AddObserver(observer Observer) {
	r.Lock()
	defer r.Unlock()
	r.observers = append(r.observers, observer)
}

// Authority - the current admin account
func (r *Registry) Authority() string {
	return string(r.pools.Registry.Get(authorityKey))
}

// one mutating call in progress
type update struct {
	r      *Registry
	trx    storage.Transaction
	call   Call
	events []events.Event
}

func (u *update) emit(e events.Event) {
	u.events = append(u.events, e)
}

// run f as one atomic call
//
// any error discards every write f made, including its events
func (r *Registry) execute(operation string, call Call, f func(u *update) error) error {
	r.Lock()
	defer r.Unlock()

	start := time.Now()
	if nil == call.Deposit {
		call.Deposit = new(uint256.Int)
	}

	trx, err := r.db.Begin()
	if nil != err {
		r.log.Errorf("%s: begin error: %s", operation, err)
		r.observe(operation, err, start)
		return err
	}

	u := &update{
		r:    r,
		trx:  trx,
		call: call,
	}

	err = f(u)
	var records []events.Record
	if nil == err {
		records = r.journal(u)
		err = trx.Commit()
	} else {
		trx.Abort()
	}
	r.observe(operation, err, start)

	if nil != err {
		r.log.Debugf("%s: caller: %q  error: %s", operation, call.Caller, err)
		return err
	}

	r.log.Debugf("%s: caller: %q  events: %d", operation, call.Caller, len(records))
	if 0 != len(records) {
		for _, sink := range r.sinks {
			sink.Publish(records)
		}
	}
	return nil
}

func (r *Registry) observe(operation string, err error, start time.Time) {
	elapsed := time.Since(start)
	for _, o := range r.observers {
		o.Observe(operation, err, elapsed)
	}
}

// append the call's events to the journal in the same transaction
func (r *Registry) journal(u *update) []events.Record {
	if 0 == len(u.events) {
		return nil
	}
	sequence, _ := u.trx.GetN(r.pools.Registry, eventSequenceKey)

	records := make([]events.Record, len(u.events))
	for i, e := range u.events {
		sequence += 1
		record := events.NewRecord(sequence, e)
		u.trx.Put(r.pools.Events, record.Key(), record.Pack())
		records[i] = record
		r.log.Infof("event: %s", record.Text)
	}
	u.trx.PutN(r.pools.Registry, eventSequenceKey, sequence)
	return records
}

// the deposit attached to a call must cover required
func requireDeposit(call Call, required *uint256.Int) error {
	if call.Deposit.Cmp(required) >= 0 {
		return nil
	}
	return fault.InvalidError(fmt.Sprintf("not enough NEAR storage deposit, required: %s yoctoNEAR (%s NEAR)", sbt.FormatYocto(required), sbt.FormatNEAR(required)))
}

// charge for bytes added by the pending writes of this call
func (u *update) requireStorageDeposit() error {
	delta := u.trx.Delta()
	if delta <= 0 {
		return nil
	}
	required := new(uint256.Int).Mul(u.r.byteCost, uint256.NewInt(uint64(delta)))
	return requireDeposit(u.call, required)
}

// clip a caller supplied batch limit, zero selects the default
func (r *Registry) batch(limit int) (int, error) {
	if limit < 0 {
		return 0, fault.InvalidLimit
	}
	if 0 == limit {
		return r.batchLimit, nil
	}
	if limit > r.queryLimit {
		return r.queryLimit, nil
	}
	return limit, nil
}
