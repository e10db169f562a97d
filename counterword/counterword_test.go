// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counterword_test

import (
	"encoding/binary"
	"testing"

	"github.com/mintmark-io/mintmarkd/counterword"
	"github.com/mintmark-io/mintmarkd/fault"
	"github.com/mintmark-io/mintmarkd/storage"
)

// in-memory stand-in for a storage pool
type mapHandle struct {
	data map[string][]byte
}

func newMapHandle() *mapHandle {
	return &mapHandle{data: make(map[string][]byte)}
}

func (m *mapHandle) Get(key []byte) []byte {
	value, ok := m.data[string(key)]
	if !ok {
		return nil
	}
	return value
}

func (m *mapHandle) GetN(key []byte) (uint64, bool) {
	value := m.Get(key)
	if nil == value {
		return 0, false
	}
	return binary.BigEndian.Uint64(value[:8]), true
}

func (m *mapHandle) Has(key []byte) bool {
	_, ok := m.data[string(key)]
	return ok
}

func (m *mapHandle) LastElement() (storage.Element, bool) {
	return storage.Element{}, false
}

func (m *mapHandle) Put(key []byte, value []byte) {
	m.data[string(key)] = value
}

func (m *mapHandle) Delete(key []byte) {
	delete(m.data, string(key))
}

const anyTime = 1000

// capacity 3: exactly 3 units mint, the 4th always fails sold out
func TestSupplyGate(t *testing.T) {
	w, err := counterword.New(newMapHandle(), "test", 3, 0, 0)
	if nil != err {
		t.Fatalf("new error: %s", err)
	}

	first, last, err := w.MintUnits(3, 0, anyTime)
	if nil != err {
		t.Fatalf("mint error: %s", err)
	}
	if 1 != first || 3 != last {
		t.Fatalf("assigned range: [%d,%d]  expected: [1,3]", first, last)
	}

	_, _, err = w.MintUnits(1, 0, anyTime)
	if fault.SoldOut != err {
		t.Errorf("mint error: %v  expected: %v", err, fault.SoldOut)
	}

	if 3 != w.Issued() {
		t.Errorf("issued: %d  expected: %d", w.Issued(), 3)
	}
}

// exactly capacity units regardless of batching
func TestSupplyGateBatching(t *testing.T) {
	w, err := counterword.New(newMapHandle(), "test", 5, 0, 0)
	if nil != err {
		t.Fatalf("new error: %s", err)
	}

	// over-request fails, leaving supply intact
	_, _, err = w.MintUnits(6, 0, anyTime)
	if fault.SoldOut != err {
		t.Fatalf("oversized mint error: %v  expected: %v", err, fault.SoldOut)
	}

	total := uint64(0)
	for _, n := range []uint64{2, 1, 2} {
		first, last, err := w.MintUnits(n, 0, anyTime)
		if nil != err {
			t.Fatalf("mint %d error: %s", n, err)
		}
		if first != total+1 || last != total+n {
			t.Errorf("assigned range: [%d,%d]  expected: [%d,%d]", first, last, total+1, total+n)
		}
		total += n
	}

	_, _, err = w.MintUnits(1, 0, anyTime)
	if fault.SoldOut != err {
		t.Errorf("mint past capacity error: %v  expected: %v", err, fault.SoldOut)
	}
}

// deadline T+100: success at T+50, monotonic failure after T+100
func TestDeadlineGate(t *testing.T) {
	const deadline = anyTime + 100

	w, err := counterword.New(newMapHandle(), "test", 0, deadline, 0)
	if nil != err {
		t.Fatalf("new error: %s", err)
	}

	_, _, err = w.MintUnits(1, 0, anyTime+50)
	if nil != err {
		t.Fatalf("mint before deadline error: %s", err)
	}

	// boundary: at the deadline is still valid
	_, _, err = w.MintUnits(1, 0, deadline)
	if nil != err {
		t.Fatalf("mint at deadline error: %s", err)
	}

	_, _, err = w.MintUnits(1, 0, deadline+50)
	if fault.DeadlinePassed != err {
		t.Errorf("late mint error: %v  expected: %v", err, fault.DeadlinePassed)
	}

	// the transition is permanent
	_, _, err = w.MintUnits(1, 0, deadline+1000)
	if fault.DeadlinePassed != err {
		t.Errorf("later mint error: %v  expected: %v", err, fault.DeadlinePassed)
	}
}

// payment must exactly equal quantity times unit price
func TestPriceGate(t *testing.T) {
	const price = 5 * counterword.PriceScale

	w, err := counterword.New(newMapHandle(), "test", 0, 0, price)
	if nil != err {
		t.Fatalf("new error: %s", err)
	}

	testCases := []struct {
		n       uint64
		payment uint64
		err     error
	}{
		{1, price, nil},
		{1, price - 1, fault.WrongPayment},
		{1, price + 1, fault.WrongPayment},
		{3, 3 * price, nil},
		{3, 2 * price, fault.WrongPayment},
		{1, 0, fault.WrongPayment},
	}

	for i, testCase := range testCases {
		_, _, err := w.MintUnits(testCase.n, testCase.payment, anyTime)
		if testCase.err != err {
			t.Errorf("%d: mint error: %v  expected: %v", i, err, testCase.err)
		}
	}
}

// validation order is supply, then time, then price
func TestValidationOrder(t *testing.T) {
	const deadline = anyTime - 1 // already passed

	w, err := counterword.New(newMapHandle(), "test", 1, deadline, 7*counterword.PriceScale)
	if nil != err {
		t.Fatalf("new error: %s", err)
	}

	// everything is wrong: supply must win
	_, _, err = w.MintUnits(2, 0, anyTime)
	if fault.SoldOut != err {
		t.Errorf("error: %v  expected: %v", err, fault.SoldOut)
	}

	// time and price wrong: time must win
	_, _, err = w.MintUnits(1, 0, anyTime)
	if fault.DeadlinePassed != err {
		t.Errorf("error: %v  expected: %v", err, fault.DeadlinePassed)
	}
}

// zero quantity is rejected
func TestZeroQuantity(t *testing.T) {
	w, err := counterword.New(newMapHandle(), "test", 0, 0, 0)
	if nil != err {
		t.Fatalf("new error: %s", err)
	}

	_, _, err = w.MintUnits(0, 0, anyTime)
	if fault.InvalidCount != err {
		t.Errorf("error: %v  expected: %v", err, fault.InvalidCount)
	}
}

// a quantity that would wrap the issued count is rejected even when
// the capacity is unbounded
func TestCountOverflow(t *testing.T) {
	w, err := counterword.New(newMapHandle(), "test", 0, 0, 0)
	if nil != err {
		t.Fatalf("new error: %s", err)
	}

	_, _, err = w.AddUnits(5)
	if nil != err {
		t.Fatalf("add error: %s", err)
	}

	const wrapping = ^uint64(0) - 3 // issued + n wraps

	_, _, err = w.MintUnits(wrapping, 0, anyTime)
	if fault.InvalidCount != err {
		t.Errorf("mint error: %v  expected: %v", err, fault.InvalidCount)
	}

	_, _, err = w.AddUnits(wrapping)
	if fault.InvalidCount != err {
		t.Errorf("add error: %v  expected: %v", err, fault.InvalidCount)
	}

	if 5 != w.Issued() {
		t.Errorf("issued: %d  expected: %d", w.Issued(), 5)
	}
}

// price field limits
func TestSetUnitPrice(t *testing.T) {
	w, err := counterword.New(newMapHandle(), "test", 0, 0, 0)
	if nil != err {
		t.Fatalf("new error: %s", err)
	}

	err = w.SetUnitPrice(42 * counterword.PriceScale)
	if nil != err {
		t.Fatalf("set price error: %s", err)
	}
	if 42*counterword.PriceScale != w.UnitPrice() {
		t.Errorf("price: %d  expected: %d", w.UnitPrice(), 42*counterword.PriceScale)
	}

	// does not fit the 32 bit field
	err = w.SetUnitPrice(uint64(1) << 63)
	if fault.PriceOverflow != err {
		t.Errorf("overflow error: %v  expected: %v", err, fault.PriceOverflow)
	}

	// non-zero price that scales down to zero
	err = w.SetUnitPrice(counterword.PriceScale - 1)
	if fault.PriceTooLow != err {
		t.Errorf("low price error: %v  expected: %v", err, fault.PriceTooLow)
	}

	// failures leave the price untouched
	if 42*counterword.PriceScale != w.UnitPrice() {
		t.Errorf("price after failures: %d  expected: %d", w.UnitPrice(), 42*counterword.PriceScale)
	}

	// zero itself is a valid "free" price
	err = w.SetUnitPrice(0)
	if nil != err {
		t.Errorf("zero price error: %s", err)
	}
}

// the word survives a reload and ignores replacement seeds
func TestPersistence(t *testing.T) {
	pool := newMapHandle()

	w, err := counterword.New(pool, "test", 10, anyTime+100, 3*counterword.PriceScale)
	if nil != err {
		t.Fatalf("new error: %s", err)
	}

	_, _, err = w.MintUnits(4, 4*3*counterword.PriceScale, anyTime)
	if nil != err {
		t.Fatalf("mint error: %s", err)
	}

	// reload with different seed values: the stored record wins
	reloaded, err := counterword.New(pool, "test", 999, 0, 0)
	if nil != err {
		t.Fatalf("reload error: %s", err)
	}

	if 4 != reloaded.Issued() {
		t.Errorf("issued: %d  expected: %d", reloaded.Issued(), 4)
	}
	if 10 != reloaded.Capacity() {
		t.Errorf("capacity: %d  expected: %d", reloaded.Capacity(), 10)
	}
	if anyTime+100 != reloaded.Deadline() {
		t.Errorf("deadline: %d  expected: %d", reloaded.Deadline(), anyTime+100)
	}
	if 3*counterword.PriceScale != reloaded.UnitPrice() {
		t.Errorf("price: %d  expected: %d", reloaded.UnitPrice(), 3*counterword.PriceScale)
	}
}
