// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test setup for the rpc handler tests
package fixtures

import (
	"fmt"
	"io/ioutil"
	"os"
	"path"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
)

// LogCategory - logger channel used by handler tests
const LogCategory = "testing"

const logDirectory = "testing"

// SetupTestLogger - create a logging fixture for a test
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(logDirectory, 0700)

	logging := logger.Configuration{
		Directory: logDirectory,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	_ = logger.Initialise(logging)
}

// TeardownTestLogger - remove all files created by SetupTestLogger
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(logDirectory)
}

// Certificate - PEM certificate for TLS tests, generated on first use
func Certificate(dir string) string {
	cert, _ := certificatePair(dir)
	return cert
}

// Key - PEM private key matching Certificate
func Key(dir string) string {
	_, key := certificatePair(dir)
	return key
}

func certificatePair(dir string) (string, string) {
	certificateFileName := path.Join(dir, "test.crt")
	keyFileName := path.Join(dir, "test.key")

	cert, err1 := ioutil.ReadFile(certificateFileName)
	key, err2 := ioutil.ReadFile(keyFileName)
	if nil == err1 && nil == err2 {
		return string(cert), string(key)
	}

	validUntil := time.Now().Add(24 * time.Hour)
	cert, key, err := certgen.NewTLSCertPair("mintmarkd test", validUntil, false, nil)
	if nil != err {
		logger.Panicf("fixtures: certificate generation failed: %s", err)
	}

	_ = ioutil.WriteFile(certificateFileName, cert, 0666)
	_ = ioutil.WriteFile(keyFileName, key, 0600)

	return string(cert), string(key)
}
