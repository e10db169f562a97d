// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/mintmark-io/mintmarkd/counter"
	"github.com/mintmark-io/mintmarkd/edition"
	"github.com/mintmark-io/mintmarkd/fault"
	"github.com/mintmark-io/mintmarkd/rpc/certificate"
	"github.com/mintmark-io/mintmarkd/rpc/listeners"
	"github.com/mintmark-io/mintmarkd/rpc/server"
)

const (
	tlsName = "client_rpc"
)

// connection count limit encompasses all listen addresses
var connectionCountRPC counter.Counter

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start the client RPC server
func Initialise(rpcConfiguration *listeners.RPCConfiguration, version string) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, certificateFingerprint, err := certificate.Get(log, tlsName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&connectionCountRPC,
		server.Create(log, version, &connectionCountRPC, edition.Get()),
		tlsConfig,
		certificateFingerprint,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		return err
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
