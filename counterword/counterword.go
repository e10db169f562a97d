// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counterword - the per-edition issuance counter
//
// One jointly-atomic record holds the issued count, the capacity, the
// mint deadline and the unit price.  Every per-unit mint performs one
// read of the word, validates supply then time then price, and on
// success performs one write; a failed validation leaves the word
// untouched.  A mutex guards the whole word so no caller can observe
// a partially applied update.
//
// The packed form is also the persisted form:
//
//   issued 8 ⧺ capacity 8 ⧺ deadline 8 ⧺ price 4 ⧺ reserved 4
//
// price is stored in units of PriceScale base units to fit its 32 bit
// field.
package counterword

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/mintmark-io/mintmarkd/fault"
	"github.com/mintmark-io/mintmarkd/storage"
)

// PriceScale - base units per stored price unit
const PriceScale = 1000

// structure of the packed record
const (
	issuedStart    = 0
	issuedFinish   = issuedStart + 8
	capacityStart  = issuedFinish
	capacityFinish = capacityStart + 8
	deadlineStart  = capacityFinish
	deadlineFinish = deadlineStart + 8
	priceStart     = deadlineFinish
	priceFinish    = priceStart + 4

	packedLength = priceFinish + 4 // reserved tail
)

// Word - the mint gate
//
// issued is monotonically non-decreasing; capacity and deadline are
// immutable after creation (0 = unbounded / none); price is mutable
// through SetUnitPrice
type Word struct {
	sync.Mutex
	issued   uint64
	capacity uint64
	deadline int64
	price    uint32
	pool     storage.Handle
	key      []byte
}

// New - create or reload the counter word for an edition
//
// an existing persisted record wins completely: capacity and deadline
// are immutable after creation and the issued count must survive a
// restart; the arguments only seed a brand new record
func New(pool storage.Handle, name string, capacity uint64, deadline int64, priceBaseUnits uint64) (*Word, error) {

	w := &Word{
		pool: pool,
		key:  []byte(name),
	}

	if packed := pool.Get(w.key); nil != packed {
		if packedLength != len(packed) {
			return nil, fault.InvalidChunkLength
		}
		w.issued = binary.BigEndian.Uint64(packed[issuedStart:issuedFinish])
		w.capacity = binary.BigEndian.Uint64(packed[capacityStart:capacityFinish])
		w.deadline = int64(binary.BigEndian.Uint64(packed[deadlineStart:deadlineFinish]))
		w.price = binary.BigEndian.Uint32(packed[priceStart:priceFinish])
		return w, nil
	}

	scaled, err := scalePrice(priceBaseUnits)
	if nil != err {
		return nil, err
	}

	w.capacity = capacity
	w.deadline = deadline
	w.price = scaled
	w.store()

	return w, nil
}

// convert an externally denominated price to the stored field
func scalePrice(baseUnits uint64) (uint32, error) {
	scaled := baseUnits / PriceScale
	if scaled > math.MaxUint32 {
		return 0, fault.PriceOverflow
	}
	if 0 == scaled && 0 != baseUnits {
		return 0, fault.PriceTooLow
	}
	return uint32(scaled), nil
}

// must hold the lock
func (w *Word) store() {
	packed := make([]byte, packedLength)
	binary.BigEndian.PutUint64(packed[issuedStart:issuedFinish], w.issued)
	binary.BigEndian.PutUint64(packed[capacityStart:capacityFinish], w.capacity)
	binary.BigEndian.PutUint64(packed[deadlineStart:deadlineFinish], uint64(w.deadline))
	binary.BigEndian.PutUint32(packed[priceStart:priceFinish], w.price)
	w.pool.Put(w.key, packed)
}

// MintUnits - the per-unit mint gate
//
// validates in fixed order: supply, then time, then price; payment is
// in base units and must exactly equal n times the unit price.  The
// clock is sampled once by the caller and passed in.  Returns the
// assigned id range [first, last].
func (w *Word) MintUnits(n uint64, payment uint64, now int64) (uint64, uint64, error) {
	w.Lock()
	defer w.Unlock()

	if 0 == n || n > math.MaxUint64-w.issued {
		return 0, 0, fault.InvalidCount
	}

	newIssued := w.issued + n

	if 0 != w.capacity && newIssued > w.capacity {
		return 0, 0, fault.SoldOut
	}

	if 0 != w.deadline && now > w.deadline {
		return 0, 0, fault.DeadlinePassed
	}

	unitPrice := uint64(w.price) * PriceScale
	if 0 != unitPrice && n > math.MaxUint64/unitPrice {
		return 0, 0, fault.PriceOverflow
	}
	if payment != n*unitPrice {
		return 0, 0, fault.WrongPayment
	}

	first := w.issued + 1
	w.issued = newIssued
	w.store()

	return first, newIssued, nil
}

// AddUnits - consume ids for a bulk creation
//
// only the supply limit applies: bulk chunks are created by the
// edition authority, not bought, so time and price do not gate them
func (w *Word) AddUnits(n uint64) (uint64, uint64, error) {
	w.Lock()
	defer w.Unlock()

	if 0 == n || n > math.MaxUint64-w.issued {
		return 0, 0, fault.InvalidCount
	}

	newIssued := w.issued + n

	if 0 != w.capacity && newIssued > w.capacity {
		return 0, 0, fault.SoldOut
	}

	first := w.issued + 1
	w.issued = newIssued
	w.store()

	return first, newIssued, nil
}

// SetUnitPrice - update the mutable price field
//
// baseUnits is scaled down to the stored field; a price too large for
// the field fails, as does a non-zero price that rounds down to zero
func (w *Word) SetUnitPrice(baseUnits uint64) error {
	w.Lock()
	defer w.Unlock()

	scaled, err := scalePrice(baseUnits)
	if nil != err {
		return err
	}

	w.price = scaled
	w.store()
	return nil
}

// UnitPrice - current price in base units
func (w *Word) UnitPrice() uint64 {
	w.Lock()
	defer w.Unlock()
	return uint64(w.price) * PriceScale
}

// Issued - count of ids assigned so far
func (w *Word) Issued() uint64 {
	w.Lock()
	defer w.Unlock()
	return w.issued
}

// Capacity - maximum issuable, 0 = unbounded
func (w *Word) Capacity() uint64 {
	w.Lock()
	defer w.Unlock()
	return w.capacity
}

// Deadline - unix time limit on minting, 0 = none
func (w *Word) Deadline() int64 {
	w.Lock()
	defer w.Unlock()
	return w.deadline
}
