// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package edition - the ownership ledger behind one token edition
//
// Combines the write-once bulk record, the ownership overlay and the
// counter word.  Every mutating operation runs to completion under one
// lock and stages its pool updates into a single transaction, so a
// failed validation leaves no partial state anywhere.
package edition

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/mintmark-io/mintmarkd/address"
	"github.com/mintmark-io/mintmarkd/bulkrecord"
	"github.com/mintmark-io/mintmarkd/counterword"
	"github.com/mintmark-io/mintmarkd/fault"
	"github.com/mintmark-io/mintmarkd/ownership"
	"github.com/mintmark-io/mintmarkd/storage"
)

// Edition - interface for ledger operations, mockable for rpc tests
type Edition interface {
	Issue(owners []address.Address) (uint64, error)
	Mint(owner address.Address, quantity uint64, payment uint64) (uint64, uint64, error)
	Transfer(id uint64, from address.Address, to address.Address) error
	Approve(id uint64, owner address.Address, operator address.Address) error
	OwnerOf(id uint64) (address.Address, error)
	BalanceOf(owner address.Address) (uint64, error)
	IsPrimaryHolder(owner address.Address) bool
	ApprovedFor(id uint64) (address.Address, bool)
	SetUnitPrice(baseUnits uint64) error
	UnitPrice() uint64
	Issued() uint64
	Capacity() uint64
	Deadline() int64
	Name() string
}

type editionData struct {
	sync.RWMutex
	log  *logger.L
	name string
	bulk *bulkrecord.Record
	word *counterword.Word
}

// Issue - bulk-create one chunk of tokens
//
// ids are drawn from the counter word so bulk and minted tokens share
// one sequence and the capacity limit covers both; the input is fully
// validated before any id is consumed
func (e *editionData) Issue(owners []address.Address) (uint64, error) {
	e.Lock()
	defer e.Unlock()

	if err := e.bulk.CanAppend(owners); nil != err {
		return 0, err
	}

	first, last, err := e.word.AddUnits(uint64(len(owners)))
	if nil != err {
		return 0, err
	}

	lastId, err := e.bulk.Append(first, owners)
	if nil != err {
		// cannot happen after CanAppend
		logger.Panicf("edition.Issue: append after validation failed: %s", err)
	}
	if lastId != last {
		logger.Panicf("edition.Issue: id mismatch: %d != %d", lastId, last)
	}

	e.log.Infof("issued chunk: ids [%d,%d]", first, last)
	return last, nil
}

// Mint - per-unit creation through the supply/time/price gate
//
// the clock is sampled exactly once; minted ids are assigned to owner
func (e *editionData) Mint(owner address.Address, quantity uint64, payment uint64) (uint64, uint64, error) {
	e.Lock()
	defer e.Unlock()

	if owner.IsNil() {
		return 0, 0, fault.NilRecipient
	}

	// the transaction must be open before any id is consumed so a
	// begin failure cannot leave a gap in the overlay
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return 0, 0, err
	}

	first, last, err := e.word.MintUnits(quantity, payment, time.Now().Unix())
	if nil != err {
		trx.Abort()
		return 0, 0, err
	}

	ownership.CreateMinted(trx, first, last, owner)
	if err := trx.Commit(); nil != err {
		logger.Panicf("edition.Mint: commit failed: %s", err)
	}

	e.log.Infof("minted: ids [%d,%d] for %s", first, last, owner)
	return first, last, nil
}

// Transfer - move one token, already authorised by the caller
func (e *editionData) Transfer(id uint64, from address.Address, to address.Address) error {
	e.Lock()
	defer e.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	err = ownership.Transfer(trx, e.bulk, id, from, to)
	if nil != err {
		trx.Abort()
		return err
	}

	if err := trx.Commit(); nil != err {
		logger.Panicf("edition.Transfer: commit failed: %s", err)
	}
	return nil
}

// Approve - record or clear a single-token approval
func (e *editionData) Approve(id uint64, owner address.Address, operator address.Address) error {
	e.Lock()
	defer e.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	err = ownership.Approve(trx, e.bulk, id, owner, operator)
	if nil != err {
		trx.Abort()
		return err
	}

	if err := trx.Commit(); nil != err {
		logger.Panicf("edition.Approve: commit failed: %s", err)
	}
	return nil
}

// OwnerOf - resolve the current owner
func (e *editionData) OwnerOf(id uint64) (address.Address, error) {
	e.RLock()
	defer e.RUnlock()
	return ownership.OwnerOf(nil, e.bulk, id)
}

// BalanceOf - tokens currently held
func (e *editionData) BalanceOf(owner address.Address) (uint64, error) {
	e.RLock()
	defer e.RUnlock()
	return ownership.Balance(nil, e.bulk, owner)
}

// IsPrimaryHolder - bulk membership test
func (e *editionData) IsPrimaryHolder(owner address.Address) bool {
	e.RLock()
	defer e.RUnlock()
	return ownership.IsPrimaryHolder(e.bulk, owner)
}

// ApprovedFor - single-token approval, if any
func (e *editionData) ApprovedFor(id uint64) (address.Address, bool) {
	e.RLock()
	defer e.RUnlock()
	return ownership.ApprovedFor(nil, id)
}

// SetUnitPrice - authority-gated price update
func (e *editionData) SetUnitPrice(baseUnits uint64) error {
	return e.word.SetUnitPrice(baseUnits)
}

// UnitPrice - current per-unit price in base units
func (e *editionData) UnitPrice() uint64 {
	return e.word.UnitPrice()
}

// Issued - ids assigned so far
func (e *editionData) Issued() uint64 {
	return e.word.Issued()
}

// Capacity - maximum issuable, 0 = unbounded
func (e *editionData) Capacity() uint64 {
	return e.word.Capacity()
}

// Deadline - unix mint deadline, 0 = none
func (e *editionData) Deadline() int64 {
	return e.word.Deadline()
}

// Name - the configured edition name
func (e *editionData) Name() string {
	return e.name
}
