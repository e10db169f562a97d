// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership - the post-creation mutation record
//
// The bulk record is never rewritten.  The first time a token changes
// hands an overlay entry is created for it; queries consult the
// overlay first and fall back to the bulk record.  A signed per-owner
// balance ledger tracks the adjustment relative to bulk membership so
// balanceOf never scans anything.
//
// From storage/doc.go:
//
//   O ⧺ token id  - current owner when it differs from the bulk record
//   B ⧺ owner     - signed balance adjustment relative to bulk membership
//   A ⧺ token id  - single token approval
package ownership

import (
	"encoding/binary"

	"github.com/mintmark-io/mintmarkd/address"
	"github.com/mintmark-io/mintmarkd/bulkrecord"
	"github.com/mintmark-io/mintmarkd/fault"
	"github.com/mintmark-io/mintmarkd/storage"
)

// 8 byte big endian token id key
func idKey(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return key
}

// read a pool through the transaction when one is open
func poolGet(trx storage.Transaction, pool *storage.PoolHandle, key []byte) []byte {
	if nil == trx {
		return pool.Get(key)
	}
	return trx.Get(pool, key)
}

// OwnerOf - resolve the current owner of a token
//
// overlay entry first, bulk record second; an id never created fails
// not found
func OwnerOf(trx storage.Transaction, bulk *bulkrecord.Record, id uint64) (address.Address, error) {

	if packed := poolGet(trx, storage.Pool.Overlay, idKey(id)); nil != packed {
		var owner address.Address
		if err := address.FromBytes(&owner, packed); nil != err {
			return address.Nil, err
		}
		return owner, nil
	}

	return bulk.Lookup(id)
}

// Balance - bulk membership plus the signed ledger adjustment
//
// a negative result is impossible under correct use and reports a
// corrupt ledger
func Balance(trx storage.Transaction, bulk *bulkrecord.Record, owner address.Address) (uint64, error) {

	n := int64(0)
	if bulk.Membership(owner) {
		n = 1
	}
	n += balanceAdjustment(trx, owner)

	if n < 0 {
		return 0, fault.CorruptBalanceLedger
	}
	return uint64(n), nil
}

// IsPrimaryHolder - true when the address appears in a bulk chunk
//
// exposed for audit use: a primary holder received its token at bulk
// creation rather than by later transfer
func IsPrimaryHolder(bulk *bulkrecord.Record, owner address.Address) bool {
	return bulk.Membership(owner)
}

// ApprovedFor - the operator approved for a single token, if any
func ApprovedFor(trx storage.Transaction, id uint64) (address.Address, bool) {
	packed := poolGet(trx, storage.Pool.Approvals, idKey(id))
	if nil == packed {
		return address.Nil, false
	}
	var operator address.Address
	if err := address.FromBytes(&operator, packed); nil != err {
		return address.Nil, false
	}
	return operator, true
}

// the signed ledger entry, 0 if absent
func balanceAdjustment(trx storage.Transaction, owner address.Address) int64 {
	packed := poolGet(trx, storage.Pool.Balances, owner.Bytes())
	if nil == packed || 8 != len(packed) {
		return 0
	}
	return int64(binary.BigEndian.Uint64(packed))
}

// must be called inside a transaction
func adjustBalance(trx storage.Transaction, owner address.Address, delta int64) {
	n := balanceAdjustment(trx, owner) + delta
	if 0 == n {
		trx.Delete(storage.Pool.Balances, owner.Bytes())
		return
	}
	packed := make([]byte, 8)
	binary.BigEndian.PutUint64(packed, uint64(n))
	trx.Put(storage.Pool.Balances, owner.Bytes(), packed)
}
