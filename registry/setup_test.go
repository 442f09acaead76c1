// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/soulbound/events"
	"github.com/bitmark-inc/soulbound/fixtures"
	"github.com/bitmark-inc/soulbound/sbt"
	"github.com/bitmark-inc/soulbound/storage"
)

// unix ms used as the time of every call unless a test moves it
const now = uint64(1600000000000)

type recordSink struct {
	records []events.Record
}

func (s *recordSink) Publish(records []events.Record) {
	s.records = append(s.records, records...)
}

func (s *recordSink) named(name string) []string {
	texts := make([]string, 0)
	for _, r := range s.records {
		if strings.Contains(r.Text, `"event":"`+name+`"`) {
			texts = append(texts, r.Text)
		}
	}
	return texts
}

func defaultConfiguration() *Configuration {
	return &Configuration{
		Authority:  fixtures.Authority,
		IAHIssuer:  fixtures.Issuer1,
		IAHClasses: []uint64{1, 3},
		Flaggers:   []string{fixtures.Flagger},
	}
}

type harness struct {
	t       *testing.T
	db      *storage.Database
	r       *Registry
	sink    *recordSink
	testnet bool
}

func setup(t *testing.T) *harness {
	return setupWith(t, defaultConfiguration())
}

func setupWith(t *testing.T, configuration *Configuration) *harness {
	fixtures.SetupTestLogger()

	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("open memory database error: %s", err)
	}

	h := &harness{
		t:    t,
		db:   db,
		sink: &recordSink{},
	}
	r, err := New(logger.New(fixtures.LogCategory), db, configuration, func() bool { return h.testnet })
	if nil != err {
		t.Fatalf("new registry error: %s", err)
	}
	r.AddSink(h.sink)
	h.r = r
	return h
}

func (h *harness) teardown() {
	h.db.Close()
	fixtures.TeardownTestLogger()
}

func rich() *uint256.Int {
	return sbt.MilliNEAR(1000000)
}

func callBy(caller string) Call {
	return Call{
		Caller:  caller,
		Deposit: rich(),
		Now:     now,
	}
}

func (h *harness) addIssuers(issuers ...string) {
	for _, issuer := range issuers {
		added, err := h.r.AddIssuer(callBy(fixtures.Authority), issuer)
		assert.Nil(h.t, err, "add issuer: %s", issuer)
		assert.True(h.t, added, "add issuer: %s", issuer)
	}
}

func metadata(class sbt.ClassId) sbt.TokenMetadata {
	return sbt.TokenMetadata{
		Class: class,
	}
}

func expiring(class sbt.ClassId, expiresAt uint64) sbt.TokenMetadata {
	return sbt.TokenMetadata{
		Class:     class,
		ExpiresAt: &expiresAt,
	}
}

func (h *harness) mint(issuer string, owner string, classes ...sbt.ClassId) []sbt.TokenId {
	m := make([]sbt.TokenMetadata, len(classes))
	for i, c := range classes {
		m[i] = metadata(c)
	}
	tokens, err := h.r.Mint(callBy(issuer), []sbt.TokenSpec{{Owner: owner, Metadata: m}}, nil)
	if nil != err {
		h.t.Fatalf("mint: %s -> %s  classes: %v  error: %s", issuer, owner, classes, err)
	}
	return tokens
}

func classRange(first sbt.ClassId, n int) []sbt.ClassId {
	classes := make([]sbt.ClassId, n)
	for i := range classes {
		classes[i] = first + sbt.ClassId(i)
	}
	return classes
}

// recount every supply index from the token store and compare
func (h *harness) checkSupply() {
	t := h.t
	pools := &h.db.Pool

	byIssuer := make(map[string]uint64)
	byClass := make(map[string]uint64)
	byOwner := make(map[string]uint64)
	tokens := 0

	err := pools.IssuerTokens.NewFetchCursor().Map(func(key []byte, value []byte) error {
		issuer := sbt.IssuerId(binary.BigEndian.Uint32(key[:issuerIdSize]))
		token := sbt.TokenId(binary.BigEndian.Uint64(key[issuerIdSize:]))
		data, err := sbt.UnpackTokenData(value)
		if nil != err {
			return err
		}
		class := data.Metadata.Current().Class

		indexed := pools.Balances.Get(balanceKey(data.Owner, issuer, class))
		assert.Equal(t, tokenIdBytes(token), indexed, "balance entry of token: %d/%d", issuer, token)

		byIssuer[string(issuerKey(issuer))] += 1
		byClass[string(classKey(issuer, class))] += 1
		byOwner[string(ownerIssuerKey(data.Owner, issuer))] += 1
		tokens += 1
		return nil
	})
	assert.Nil(t, err, "scan tokens")

	balances := 0
	pools.Balances.NewFetchCursor().Map(func(key []byte, value []byte) error {
		balances += 1
		return nil
	})
	assert.Equal(t, tokens, balances, "balance entries")

	compare := func(name string, pool *storage.PoolHandle, expected map[string]uint64) {
		actual := make(map[string]uint64)
		pool.NewFetchCursor().Map(func(key []byte, value []byte) error {
			actual[string(key)] = binary.BigEndian.Uint64(value)
			return nil
		})
		assert.Equal(t, expected, actual, "%s supply", name)
	}
	compare("issuer", pools.SupplyByIssuer, byIssuer)
	compare("class", pools.SupplyByClass, byClass)
	compare("owner", pools.SupplyByOwner, byOwner)
}
