// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// Transaction - batched all-or-nothing updates across any number of pools
//
// reads made through the transaction see values staged by earlier Puts
type Transaction interface {
	Begin() error
	Abort()
	Commit() error
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	InUse() bool
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
}

type transactionData struct {
	dataAccess Access
}

func newTransaction(dataAccess Access) Transaction {
	return &transactionData{
		dataAccess: dataAccess,
	}
}

func (t *transactionData) Begin() error {
	return t.dataAccess.Begin()
}

func (t *transactionData) Abort() {
	t.dataAccess.Abort()
}

func (t *transactionData) Commit() error {
	return t.dataAccess.Commit()
}

func (t *transactionData) InUse() bool {
	return t.dataAccess.InUse()
}

func (t *transactionData) Put(p *PoolHandle, key []byte, value []byte) {
	t.dataAccess.BatchPut(p.prefixKey(key), value)
}

func (t *transactionData) PutN(p *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.dataAccess.BatchPut(p.prefixKey(key), buffer)
}

func (t *transactionData) Delete(p *PoolHandle, key []byte) {
	t.dataAccess.BatchDelete(p.prefixKey(key))
}

func (t *transactionData) Get(p *PoolHandle, key []byte) []byte {
	value, err := t.dataAccess.Get(p.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("transaction.Get", err)
	return value
}

func (t *transactionData) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	buffer := t.Get(p, key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("transaction.GetN truncated record for: %x: %s", key, buffer)
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

func (t *transactionData) Has(p *PoolHandle, key []byte) bool {
	value, err := t.dataAccess.Has(p.prefixKey(key))
	logger.PanicIfError("transaction.Has", err)
	return value
}
