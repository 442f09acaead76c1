// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/soulbound/fault"
)

// Transaction - all writes of one registry call
//
// nothing reaches the database until Commit; Abort discards every
// pending write
type Transaction interface {
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	Usage() uint64
	Delta() int64
	Commit() error
	Abort()
}

type transaction struct {
	sync.Mutex
	inUse    bool
	database *Database
	usage    uint64
	delta    int64
}

func newTransaction(database *Database) *transaction {
	return &transaction{
		database: database,
	}
}

func (t *transaction) begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.TransactionAlreadyActive
	}

	t.inUse = true
	t.usage = t.database.usage()
	t.delta = 0
	return nil
}

// size of an existing record including its prefixed key
func (t *transaction) sizeOf(handle *PoolHandle, key []byte) int64 {
	old := handle.Get(key)
	if nil == old {
		return 0
	}
	return int64(1 + len(key) + len(old))
}

func (t *transaction) Put(handle *PoolHandle, key []byte, value []byte) {
	t.Lock()
	defer t.Unlock()
	t.delta += int64(1+len(key)+len(value)) - t.sizeOf(handle, key)
	handle.put(key, value)
}

func (t *transaction) PutN(handle *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.Put(handle, key, buffer)
}

func (t *transaction) Delete(handle *PoolHandle, key []byte) {
	t.Lock()
	defer t.Unlock()
	t.delta -= t.sizeOf(handle, key)
	handle.remove(key)
}

func (t *transaction) Get(handle *PoolHandle, key []byte) []byte {
	return handle.Get(key)
}

func (t *transaction) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	return handle.GetN(key)
}

func (t *transaction) Has(handle *PoolHandle, key []byte) bool {
	return handle.Has(key)
}

// Usage - total storage bytes when the transaction began
func (t *transaction) Usage() uint64 {
	t.Lock()
	defer t.Unlock()
	return t.usage
}

// Delta - bytes added by pending writes, negative when storage is freed
func (t *transaction) Delta() int64 {
	t.Lock()
	defer t.Unlock()
	return t.delta
}

func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.TransactionNotActive
	}
	t.inUse = false

	if 0 == t.database.access.pending() {
		return nil
	}

	total := int64(t.usage) + t.delta
	if total < 0 {
		total = 0
	}
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, uint64(total))

	err := t.database.access.commit(usageKey, buffer)
	if nil != err {
		return fault.ProcessError("commit failed: " + err.Error())
	}
	return nil
}

func (t *transaction) Abort() {
	t.Lock()
	defer t.Unlock()

	t.database.access.abort()
	t.inUse = false
	t.delta = 0
}
