// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/mintmark-io/mintmarkd/configuration"
	"github.com/mintmark-io/mintmarkd/rpc/listeners"
	"github.com/mintmark-io/mintmarkd/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultKeyFile         = "rpc.key"
	defaultCertificateFile = "rpc.crt"

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "mintmark.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "mintmarkd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients   = 10
	defaultRPCBandwidth = 25000000 // 25Mbps
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - directory and name of leveldb
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// EditionType - the edition served by this daemon
type EditionType struct {
	Name      string `gluamapper:"name" json:"name"`
	Capacity  uint64 `gluamapper:"capacity" json:"capacity"` // 0 = unbounded
	Deadline  string `gluamapper:"deadline" json:"deadline"` // RFC3339 or unix seconds, "" = none
	Price     uint64 `gluamapper:"price" json:"price"`       // base units per token
	PriceFile string `gluamapper:"price_file" json:"price_file"`
	BulkOnce  bool   `gluamapper:"bulk_once" json:"bulk_once"`
}

// Configuration - the daemon configuration
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Testing       bool         `gluamapper:"testing" json:"testing"`
	Database      DatabaseType `gluamapper:"database" json:"database"`

	Edition   EditionType                `gluamapper:"edition" json:"edition"`
	ClientRPC listeners.RPCConfiguration `gluamapper:"client_rpc" json:"client_rpc"`
	Logging   logger.Configuration       `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		Edition: EditionType{
			Name: "mintmark",
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Bandwidth:          defaultRPCBandwidth,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
		&options.Edition.PriceFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if the database name is not a simple file name,
	// then add the database directory prefix
	switch filepath.Dir(options.Database.Name) {
	case "", ".":
		options.Database.Name = util.EnsureAbsolute(options.Database.Directory, options.Database.Name)
	default:
		return nil, fmt.Errorf("files: %q is not plain name", options.Database.Name)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// deadline must parse before any service is started
	if _, err := options.Edition.DeadlineUnix(); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// DeadlineUnix - the configured mint deadline as unix seconds, 0 = none
//
// accepts RFC3339 or a plain decimal unix timestamp
func (e *EditionType) DeadlineUnix() (int64, error) {
	if "" == e.Deadline {
		return 0, nil
	}
	if when, err := time.Parse(time.RFC3339, e.Deadline); nil == err {
		return when.Unix(), nil
	}
	seconds, err := strconv.ParseInt(e.Deadline, 10, 64)
	if nil != err {
		return 0, fmt.Errorf("deadline: %q is not RFC3339 or unix seconds", e.Deadline)
	}
	return seconds, nil
}

// read the certificate and key files named in the configuration,
// replacing the paths by the PEM content expected by the rpc layer
func (c *Configuration) loadCertificates() error {
	for _, f := range []*string{
		&c.ClientRPC.Certificate,
		&c.ClientRPC.PrivateKey,
	} {
		data, err := ioutil.ReadFile(*f)
		if nil != err {
			return err
		}
		*f = string(data)
	}
	return nil
}
