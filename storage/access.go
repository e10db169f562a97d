// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"fmt"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// Access - database level operations
//
// direct Put/Delete apply immediately; the Batch* forms stage into the
// current write batch and only reach the database on Commit
type Access interface {
	Abort()
	Begin() error
	BatchDelete([]byte)
	BatchPut([]byte, []byte)
	Commit() error
	Delete([]byte) error
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	InUse() bool
	Iterator(*ldb_util.Range) iterator.Iterator
	Put([]byte, []byte) error
}

type accessData struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newAccess(db *leveldb.DB, cache Cache) Access {
	return &accessData{
		inUse: false,
		db:    db,
		batch: new(leveldb.Batch),
		cache: cache,
	}
}

func (d *accessData) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fmt.Errorf("batch already in use")
	}

	d.inUse = true
	return nil
}

func (d *accessData) BatchPut(key []byte, value []byte) {
	d.cache.Set(dbPut, string(key), value)
	d.batch.Put(key, value)
}

func (d *accessData) BatchDelete(key []byte) {
	d.cache.Set(dbDelete, string(key), []byte{})
	d.batch.Delete(key)
}

func (d *accessData) Commit() error {
	d.Lock()
	defer d.Unlock()

	err := d.db.Write(d.batch, nil)
	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
	return err
}

func (d *accessData) Abort() {
	d.Lock()
	defer d.Unlock()

	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
}

func (d *accessData) InUse() bool {
	d.Lock()
	defer d.Unlock()
	return d.inUse
}

func (d *accessData) Put(key []byte, value []byte) error {
	return d.db.Put(key, value, nil)
}

func (d *accessData) Delete(key []byte) error {
	return d.db.Delete(key, nil)
}

func (d *accessData) Get(key []byte) ([]byte, error) {
	if value, op, found := d.cache.Get(string(key)); found {
		// a staged delete must not expose the pre-delete value
		if dbDelete == op {
			return nil, leveldb.ErrNotFound
		}
		return value, nil
	}
	return d.db.Get(key, nil)
}

func (d *accessData) Has(key []byte) (bool, error) {
	if _, op, found := d.cache.Get(string(key)); found {
		return dbDelete != op, nil
	}
	return d.db.Has(key, nil)
}

func (d *accessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}
