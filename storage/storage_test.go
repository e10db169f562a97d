// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/mintmark-io/mintmarkd/storage"
)

// a key that must not exist
var nonExistantKey = []byte("/nonexistant")

// test the basic pool operations
func TestPutGetDelete(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	key := []byte("key-one")
	value := []byte("data-one")

	p.Put(key, value)

	if !p.Has(key) {
		t.Fatal("missing just stored key")
	}

	retrieved := p.Get(key)
	if !bytes.Equal(value, retrieved) {
		t.Errorf("retrieved: %q  expected: %q", retrieved, value)
	}

	p.Delete(key)

	if p.Has(key) {
		t.Error("deleted key still present")
	}
	if nil != p.Get(key) {
		t.Error("deleted key still has data")
	}
}

// test that a missing key reads as nil/not found
func TestMissingKey(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	if p.Has(nonExistantKey) {
		t.Error("non-existant key reported present")
	}
	if nil != p.Get(nonExistantKey) {
		t.Error("non-existant key has data")
	}
	if _, found := p.GetN(nonExistantKey); found {
		t.Error("non-existant key has numeric data")
	}
}

// test 8 byte big endian decoding
func TestGetN(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	key := []byte("counter")
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, 987654321)

	p.Put(key, buffer)

	n, found := p.GetN(key)
	if !found {
		t.Fatal("missing numeric record")
	}
	if 987654321 != n {
		t.Errorf("retrieved: %d  expected: %d", n, 987654321)
	}
}

// test that pools are isolated by prefix
func TestPoolIsolation(t *testing.T) {
	setup(t)
	defer teardown(t)

	key := []byte{0x01}

	storage.Pool.TestData.Put(key, []byte("test"))

	if storage.Pool.Overlay.Has(key) {
		t.Error("key leaked between pools")
	}
}

// test the last element scan used for chunk recovery
func TestLastElement(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	if _, found := p.LastElement(); found {
		t.Fatal("empty pool has a last element")
	}

	for i := uint64(1); i <= 5; i += 1 {
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, i)
		p.Put(key, []byte{byte(i)})
	}

	element, found := p.LastElement()
	if !found {
		t.Fatal("missing last element")
	}

	n := binary.BigEndian.Uint64(element.Key)
	if 5 != n {
		t.Errorf("last element key: %d  expected: %d", n, 5)
	}
	if !bytes.Equal([]byte{5}, element.Value) {
		t.Errorf("last element value: %x  expected: %x", element.Value, []byte{5})
	}
}
