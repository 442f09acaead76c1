// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/soulbound/fault"
	"github.com/bitmark-inc/logger"
)

// Pools - the set of exported pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type Pools struct {
	Registry       *PoolHandle `prefix:"M"`
	Issuers        *PoolHandle `prefix:"I"`
	IssuerAccounts *PoolHandle `prefix:"J"`
	IssuerTokens   *PoolHandle `prefix:"T"`
	Balances       *PoolHandle `prefix:"B"`
	NextTokenId    *PoolHandle `prefix:"N"`
	SupplyByOwner  *PoolHandle `prefix:"O"`
	SupplyByClass  *PoolHandle `prefix:"C"`
	SupplyByIssuer *PoolHandle `prefix:"S"`
	Banned         *PoolHandle `prefix:"X"`
	Flags          *PoolHandle `prefix:"F"`
	Flaggers       *PoolHandle `prefix:"G"`
	Minters        *PoolHandle `prefix:"A"`
	SoulTransfers  *PoolHandle `prefix:"W"`
	Recoveries     *PoolHandle `prefix:"R"`
	TransferLocks  *PoolHandle `prefix:"L"`
	Events         *PoolHandle `prefix:"E"`
}

// reserved keys outside every pool
var (
	versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}
	usageKey   = []byte{0x00, 'U', 'S', 'A', 'G', 'E'}
)

const (
	currentDBVersion = 0x100
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Database - an open ledger and its pools
type Database struct {
	sync.RWMutex
	db     *leveldb.DB
	access *AccessData
	trx    *transaction
	Pool   Pools
}

// Open - open up the database connection
//
// the database file is created if missing unless readOnly
func Open(fileName string, readOnly bool) (*Database, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(fileName, opt)
	if nil != err {
		return nil, err
	}
	return setup(db, readOnly)
}

// OpenMemory - an empty database held in memory
func OpenMemory() (*Database, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return setup(db, ReadWrite)
}

func setup(db *leveldb.DB, readOnly bool) (*Database, error) {
	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	version, err := getVersion(db)
	if nil != err {
		return nil, err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		logger.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return nil, fmt.Errorf("database version: %d > current version: %d", version, currentDBVersion)
	}

	if 0 == version {
		if readOnly {
			return nil, fmt.Errorf("database is empty and cannot be initialised read-only")
		}
		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			return nil, err
		}
	} else if version < currentDBVersion {
		logger.Criticalf("database version: %d < current version: %d", version, currentDBVersion)
		return nil, fmt.Errorf("database version: %d < current version: %d", version, currentDBVersion)
	}

	d := &Database{
		db:     db,
		access: newDA(db, newCache()),
	}
	d.trx = newTransaction(d)

	err = d.initialisePools()
	if nil != err {
		return nil, err
	}

	ok = true // prevent db close
	return d, nil
}

// scan each field of the pool struct and attach a prefix handle
func (d *Database) initialisePools() error {

	// this will be a struct type
	poolType := reflect.TypeOf(d.Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&d.Pool).Elem()

	seen := make(map[byte]string)

	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) || 0 == prefixTag[0] {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo.Name, prefixTag)
		}
		prefix := prefixTag[0]
		if other, ok := seen[prefix]; ok {
			return fmt.Errorf("pool: %v reuses prefix: %q of pool: %s", fieldInfo.Name, prefixTag, other)
		}
		seen[prefix] = fieldInfo.Name

		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:     prefix,
			limit:      limit,
			dataAccess: d.access,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}
	return nil
}

// Close - close the database connection
func (d *Database) Close() {
	d.Lock()
	defer d.Unlock()
	if nil != d.db {
		d.db.Close()
		d.db = nil
	}
}

// Usage - total bytes of keys and values held in all pools
func (d *Database) Usage() uint64 {
	d.RLock()
	defer d.RUnlock()
	if nil == d.db {
		return 0
	}
	return d.usage()
}

func (d *Database) usage() uint64 {
	value, err := d.db.Get(usageKey, nil)
	if leveldb.ErrNotFound == err {
		return 0
	}
	logger.PanicIfError("storage.usage", err)
	if 8 != len(value) {
		logger.Panicf("storage.usage truncated record: %x", value)
	}
	return binary.BigEndian.Uint64(value)
}

// Begin - start a transaction, only one may be active at a time
func (d *Database) Begin() (Transaction, error) {
	d.RLock()
	defer d.RUnlock()
	if nil == d.db {
		return nil, fault.DatabaseIsNotSet
	}
	err := d.trx.begin()
	if nil != err {
		return nil, err
	}
	return d.trx, nil
}

func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
