// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/mintmark-io/mintmarkd/storage"
)

// test database file
const (
	databaseFileName = "test"
	logDirectory     = "testing"
)

// common test setup routines

// remove all files created by test
func removeFiles() {
	os.RemoveAll(databaseFileName + ".leveldb")
	os.RemoveAll(logDirectory)
}

// configure for testing
func setup(t *testing.T) {
	removeFiles()

	_ = os.Mkdir(logDirectory, 0700)
	logging := logger.Configuration{
		Directory: logDirectory,
		File:      fmt.Sprintf("%s.log", "storage-test"),
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

// post test cleanup
func teardown(t *testing.T) {
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}
