// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bulkrecord_test

import (
	"testing"

	"github.com/mintmark-io/mintmarkd/address"
	"github.com/mintmark-io/mintmarkd/bulkrecord"
	"github.com/mintmark-io/mintmarkd/fault"
)

// deterministic test address, ascending in n
func testAddress(n byte) address.Address {
	var a address.Address
	a[0] = n
	a[address.Length-1] = ^n
	return a
}

func ascending(ns ...byte) []address.Address {
	owners := make([]address.Address, len(ns))
	for i, n := range ns {
		owners[i] = testAddress(n)
	}
	return owners
}

// create then look up every assigned id
func TestRoundTrip(t *testing.T) {
	r, err := bulkrecord.New(bulkrecord.NewMemoryStore(), true)
	if nil != err {
		t.Fatalf("new error: %s", err)
	}

	owners := ascending(1, 2, 3, 7, 9)

	lastId, err := r.Append(1, owners)
	if nil != err {
		t.Fatalf("append error: %s", err)
	}
	if 5 != lastId {
		t.Fatalf("last id: %d  expected: %d", lastId, 5)
	}

	for i, expected := range owners {
		id := uint64(i) + 1
		owner, err := r.Lookup(id)
		if nil != err {
			t.Fatalf("lookup %d error: %s", id, err)
		}
		if expected != owner {
			t.Errorf("id %d owner: %v  expected: %v", id, owner, expected)
		}
	}
}

// invalid creation input is rejected without changing state
func TestRejection(t *testing.T) {
	testCases := []struct {
		scenario string
		owners   []address.Address
		err      error
	}{
		{"empty", nil, fault.EmptyChunk},
		{"descending", ascending(2, 1), fault.InvalidAddressOrder},
		{"duplicate", ascending(1, 2, 2, 3), fault.InvalidAddressOrder},
		{"nil address", []address.Address{address.Nil, testAddress(1)}, fault.NilAddress},
	}

	for _, testCase := range testCases {
		r, err := bulkrecord.New(bulkrecord.NewMemoryStore(), true)
		if nil != err {
			t.Fatalf("%s: new error: %s", testCase.scenario, err)
		}

		_, err = r.Append(1, testCase.owners)
		if testCase.err != err {
			t.Errorf("%s: error: %v  expected: %v", testCase.scenario, err, testCase.err)
		}

		// failure must leave the record untouched
		if 0 != r.HighWater() {
			t.Errorf("%s: rejected append changed the record", testCase.scenario)
		}
		_, err = r.Lookup(1)
		if fault.TokenNotFound != err {
			t.Errorf("%s: rejected append created a token", testCase.scenario)
		}
	}
}

// a single chunk record only accepts one create
func TestSingleChunk(t *testing.T) {
	r, err := bulkrecord.New(bulkrecord.NewMemoryStore(), true)
	if nil != err {
		t.Fatalf("new error: %s", err)
	}

	_, err = r.Append(1, ascending(1, 2))
	if nil != err {
		t.Fatalf("append error: %s", err)
	}

	_, err = r.Append(3, ascending(4, 5))
	if fault.AlreadyCreated != err {
		t.Errorf("second append error: %v  expected: %v", err, fault.AlreadyCreated)
	}
}

// multi chunk records append with ids strictly increasing across
// chunks, including over gaps left by per-unit minting
func TestMultiChunk(t *testing.T) {
	r, err := bulkrecord.New(bulkrecord.NewMemoryStore(), false)
	if nil != err {
		t.Fatalf("new error: %s", err)
	}

	lastId, err := r.Append(1, ascending(5, 6, 7))
	if nil != err {
		t.Fatalf("first append error: %s", err)
	}
	if 3 != lastId {
		t.Fatalf("first last id: %d  expected: %d", lastId, 3)
	}

	// ids 4 and 5 assigned elsewhere, next chunk starts at 6
	lastId, err = r.Append(6, ascending(1, 2))
	if nil != err {
		t.Fatalf("second append error: %s", err)
	}
	if 7 != lastId {
		t.Fatalf("second last id: %d  expected: %d", lastId, 7)
	}

	// the gap ids are not in the bulk record
	for _, id := range []uint64{4, 5} {
		_, err = r.Lookup(id)
		if fault.TokenNotFound != err {
			t.Errorf("gap id %d error: %v  expected: %v", id, err, fault.TokenNotFound)
		}
	}

	owner, err := r.Lookup(6)
	if nil != err {
		t.Fatalf("lookup 6 error: %s", err)
	}
	if testAddress(1) != owner {
		t.Errorf("id 6 owner: %v  expected: %v", owner, testAddress(1))
	}

	// a new chunk may not reuse assigned ids
	_, err = r.Append(7, ascending(8, 9))
	if fault.InvalidCount != err {
		t.Errorf("overlapping append error: %v  expected: %v", err, fault.InvalidCount)
	}
}

// out of range ids fail not found
func TestLookupRange(t *testing.T) {
	r, _ := bulkrecord.New(bulkrecord.NewMemoryStore(), true)
	_, err := r.Append(1, ascending(1, 2, 3))
	if nil != err {
		t.Fatalf("append error: %s", err)
	}

	for _, id := range []uint64{0, 4, 1000} {
		_, err := r.Lookup(id)
		if fault.TokenNotFound != err {
			t.Errorf("id %d error: %v  expected: %v", id, err, fault.TokenNotFound)
		}
	}
}

// binary search membership over chunk content
func TestMembership(t *testing.T) {
	r, _ := bulkrecord.New(bulkrecord.NewMemoryStore(), false)
	_, err := r.Append(1, ascending(1, 3, 5, 7, 9, 11, 13))
	if nil != err {
		t.Fatalf("append error: %s", err)
	}
	_, err = r.Append(8, ascending(2, 6))
	if nil != err {
		t.Fatalf("second append error: %s", err)
	}

	for _, n := range []byte{1, 2, 3, 5, 6, 7, 9, 11, 13} {
		if !r.Membership(testAddress(n)) {
			t.Errorf("missing member: %d", n)
		}
	}
	for _, n := range []byte{0, 4, 8, 10, 12, 14, 200} {
		if r.Membership(testAddress(n)) {
			t.Errorf("unexpected member: %d", n)
		}
	}
}
