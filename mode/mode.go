// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mode - global run state
package mode

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/mintmark-io/mintmarkd/fault"
)

// Mode - type to hold the mode
type Mode int

// all possible modes
const (
	Stopped Mode = iota
	Normal  Mode = iota
	maximum Mode = iota
)

var globalData struct {
	sync.RWMutex
	log     *logger.L
	mode    Mode
	testing bool

	// set once during initialise
	initialised bool
}

// Initialise - set up the mode system
func Initialise(testing bool) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("mode")
	globalData.log.Info("starting…")

	globalData.testing = testing
	globalData.mode = Stopped

	globalData.initialised = true
	return nil
}

// Finalise - shutdown mode handling
func Finalise() error {
	if !globalData.initialised {
		return fault.NotInitialised
	}

	Set(Stopped)

	globalData.Lock()
	globalData.initialised = false
	globalData.Unlock()
	return nil
}

// Set - change mode
func Set(mode Mode) {
	if mode >= Stopped && mode < maximum {
		globalData.Lock()
		globalData.mode = mode
		globalData.Unlock()

		globalData.log.Infof("set: %s", mode)
	}
}

// Is - detect the current mode
func Is(mode Mode) bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return mode == globalData.mode
}

// IsTesting - detect test mode
func IsTesting() bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.testing
}

// String - name of the current mode
func String() string {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.mode.String()
}

// String - current mode represented as a string
func (m Mode) String() string {
	switch m {
	case Stopped:
		return "Stopped"
	case Normal:
		return "Normal"
	default:
		return "*Unknown*"
	}
}
