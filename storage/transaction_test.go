// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"bytes"
	"testing"

	"github.com/mintmark-io/mintmarkd/storage"
)

// test that staged writes are visible inside the transaction and
// reach the database only on commit
func TestTransactionCommit(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}

	key := []byte("trx-key")
	value := []byte("trx-data")

	trx.Put(p, key, value)

	// visible through the transaction
	staged := trx.Get(p, key)
	if !bytes.Equal(value, staged) {
		t.Errorf("staged value: %q  expected: %q", staged, value)
	}
	if !trx.Has(p, key) {
		t.Error("staged key not visible in transaction")
	}

	err = trx.Commit()
	if nil != err {
		t.Fatalf("commit error: %s", err)
	}

	committed := p.Get(key)
	if !bytes.Equal(value, committed) {
		t.Errorf("committed value: %q  expected: %q", committed, value)
	}
}

// test that an aborted transaction leaves no trace
func TestTransactionAbort(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}

	key := []byte("abort-key")

	trx.Put(p, key, []byte("abort-data"))
	trx.Abort()

	if p.Has(key) {
		t.Error("aborted write reached the database")
	}
}

// test that a staged delete hides the database value for the rest of
// the transaction
func TestTransactionDeleteThenRead(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	key := []byte("del-key")
	value := []byte("del-data")

	p.Put(key, value)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}

	trx.Delete(p, key)

	if staged := trx.Get(p, key); nil != staged {
		t.Errorf("deleted key still readable: %q", staged)
	}
	if trx.Has(p, key) {
		t.Error("deleted key still visible in transaction")
	}

	// a later put in the same transaction wins again
	replacement := []byte("del-data-2")
	trx.Put(p, key, replacement)
	if staged := trx.Get(p, key); !bytes.Equal(replacement, staged) {
		t.Errorf("staged value: %q  expected: %q", staged, replacement)
	}

	err = trx.Commit()
	if nil != err {
		t.Fatalf("commit error: %s", err)
	}

	committed := p.Get(key)
	if !bytes.Equal(replacement, committed) {
		t.Errorf("committed value: %q  expected: %q", committed, replacement)
	}
}

// test that a second begin fails while the first is open
func TestTransactionInUse(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}
	defer trx.Abort()

	if !trx.InUse() {
		t.Error("open transaction not marked in use")
	}

	_, err = storage.NewDBTransaction()
	if nil == err {
		t.Error("second transaction begin succeeded")
	}
}

// test numeric put/get round trip through a transaction
func TestTransactionPutN(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}

	key := []byte("n-key")

	trx.PutN(p, key, 42)

	n, found := trx.GetN(p, key)
	if !found {
		t.Fatal("missing staged numeric record")
	}
	if 42 != n {
		t.Errorf("staged value: %d  expected: %d", n, 42)
	}

	err = trx.Commit()
	if nil != err {
		t.Fatalf("commit error: %s", err)
	}

	n, found = p.GetN(key)
	if !found {
		t.Fatal("missing committed numeric record")
	}
	if 42 != n {
		t.Errorf("committed value: %d  expected: %d", n, 42)
	}
}
