// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// AccessData - a database with a batch of pending writes
//
// reads check the pending writes first so a transaction observes
// its own changes; iterators only see committed data
type AccessData struct {
	sync.Mutex
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newDA(db *leveldb.DB, cache Cache) *AccessData {
	return &AccessData{
		db:    db,
		batch: new(leveldb.Batch),
		cache: cache,
	}
}

func (d *AccessData) Put(key []byte, value []byte) {
	d.Lock()
	defer d.Unlock()
	d.cache.Set(dbPut, string(key), value)
	d.batch.Put(key, value)
}

func (d *AccessData) Delete(key []byte) {
	d.Lock()
	defer d.Unlock()
	d.cache.Set(dbDelete, string(key), nil)
	d.batch.Delete(key)
}

// Get - returns nil value and nil error for a missing key
func (d *AccessData) Get(key []byte) ([]byte, error) {
	d.Lock()
	value, op, found := d.cache.Get(string(key))
	d.Unlock()
	if found {
		if dbDelete == op {
			return nil, nil
		}
		return value, nil
	}
	value, err := d.db.Get(key, nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return value, err
}

func (d *AccessData) Has(key []byte) (bool, error) {
	d.Lock()
	_, op, found := d.cache.Get(string(key))
	d.Unlock()
	if found {
		return dbPut == op, nil
	}
	return d.db.Has(key, nil)
}

func (d *AccessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

// commit the batch together with one extra reserved key
func (d *AccessData) commit(extraKey []byte, extraValue []byte) error {
	d.Lock()
	defer d.Unlock()
	if nil != extraKey {
		d.batch.Put(extraKey, extraValue)
	}
	err := d.db.Write(d.batch, nil)
	d.batch.Reset()
	d.cache.Clear()
	return err
}

func (d *AccessData) abort() {
	d.Lock()
	defer d.Unlock()
	d.batch.Reset()
	d.cache.Clear()
}

// number of pending operations
func (d *AccessData) pending() int {
	d.Lock()
	defer d.Unlock()
	return d.batch.Len()
}
