// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
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

	"github.com/bitmark-inc/logger"

	"github.com/mintmark-io/mintmarkd/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Chunks       *PoolHandle `prefix:"C"`
	Overlay      *PoolHandle `prefix:"O"`
	Balances     *PoolHandle `prefix:"B"`
	Approvals    *PoolHandle `prefix:"A"`
	CounterWords *PoolHandle `prefix:"W"`
	TestData     *PoolHandle `prefix:"Z"`
}

// Pool - the set of exported pools
var Pool pools

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentDBVersion = 0x100

// holds the database handle
var poolData struct {
	sync.RWMutex
	db         *leveldb.DB
	dataAccess Access
	trx        Transaction
}

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Initialise - open up the database connection
//
// this must be called before any pool is accessed
func Initialise(database string, readOnly bool) error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.db {
		return fault.AlreadyInitialised
	}

	ok := false
	defer func() {
		if !ok {
			dbClose()
		}
	}()

	db, version, err := getDB(database+".leveldb", readOnly)
	if nil != err {
		return err
	}
	poolData.db = db

	// ensure no database downgrade
	if version > currentDBVersion {
		logger.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return fmt.Errorf("database version: %d > current version: %d", version, currentDBVersion)
	}

	// database was empty so tag as current version
	if 0 == version && !readOnly {
		err = putVersion(db, currentDBVersion)
		if nil != err {
			return err
		}
	}

	poolData.dataAccess = newAccess(db, newCache())
	poolData.trx = newTransaction(poolData.dataAccess)

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:     prefix,
			limit:      limit,
			dataAccess: poolData.dataAccess,
		}

		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	ok = true // prevent db close
	return nil
}

func dbClose() {
	if nil != poolData.db {
		poolData.db.Close()
		poolData.db = nil
		poolData.dataAccess = nil
		poolData.trx = nil
	}

	// reset all pool handles
	poolValue := reflect.ValueOf(&Pool).Elem()
	for i := 0; i < poolValue.NumField(); i += 1 {
		poolValue.Field(i).Set(reflect.Zero(poolValue.Field(i).Type()))
	}
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	dbClose()
	poolData.Unlock()
}

// NewDBTransaction - begin a batched transaction
func NewDBTransaction() (Transaction, error) {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == poolData.trx {
		return nil, fault.NotInitialised
	}
	if err := poolData.trx.Begin(); nil != err {
		return nil, err
	}
	return poolData.trx, nil
}

// return:
//   database handle
//   version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
