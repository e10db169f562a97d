// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bulkrecord_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/mintmark-io/mintmarkd/bulkrecord"
	"github.com/mintmark-io/mintmarkd/storage"
)

const (
	databaseFileName = "test"
	logDirectory     = "testing"
)

func removeFiles() {
	os.RemoveAll(databaseFileName + ".leveldb")
	os.RemoveAll(logDirectory)
}

func setup(t *testing.T) {
	removeFiles()

	_ = os.Mkdir(logDirectory, 0700)
	logging := logger.Configuration{
		Directory: logDirectory,
		File:      fmt.Sprintf("%s.log", "bulkrecord-test"),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

func teardown(t *testing.T) {
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

// pool backed chunks survive a record reload
func TestPoolStoreRecovery(t *testing.T) {
	setup(t)
	defer teardown(t)

	store := bulkrecord.NewPoolStore(storage.Pool.Chunks)

	r, err := bulkrecord.New(store, false)
	if nil != err {
		t.Fatalf("new error: %s", err)
	}

	owners := ascending(1, 2, 3)
	lastId, err := r.Append(1, owners)
	if nil != err {
		t.Fatalf("append error: %s", err)
	}
	if 3 != lastId {
		t.Fatalf("last id: %d  expected: %d", lastId, 3)
	}

	// a fresh store and record over the same pool sees the chunk
	recovered, err := bulkrecord.New(bulkrecord.NewPoolStore(storage.Pool.Chunks), false)
	if nil != err {
		t.Fatalf("recovery error: %s", err)
	}

	if 3 != recovered.HighWater() {
		t.Errorf("recovered high water: %d  expected: %d", recovered.HighWater(), 3)
	}

	for i, expected := range owners {
		owner, err := recovered.Lookup(uint64(i) + 1)
		if nil != err {
			t.Fatalf("lookup %d error: %s", i+1, err)
		}
		if expected != owner {
			t.Errorf("id %d owner: %v  expected: %v", i+1, owner, expected)
		}
	}

	if !recovered.Membership(testAddress(2)) {
		t.Error("missing member after recovery")
	}
}
