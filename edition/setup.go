// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package edition

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/mintmark-io/mintmarkd/bulkrecord"
	"github.com/mintmark-io/mintmarkd/counterword"
	"github.com/mintmark-io/mintmarkd/fault"
	"github.com/mintmark-io/mintmarkd/storage"
)

var globalData struct {
	sync.Mutex
	edition *editionData

	// set once during initialise
	initialised bool
}

// Initialise - attach the edition to its storage pools
//
// storage must already be initialised; existing chunks and the
// counter word are recovered from the database.  bulkOnce restricts
// the edition to a single bulk creation call for its lifetime.
func Initialise(name string, capacity uint64, deadline int64, priceBaseUnits uint64, bulkOnce bool) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("edition")
	log.Info("starting…")

	if nil == storage.Pool.Chunks {
		return fault.NotInitialised
	}

	bulk, err := bulkrecord.New(bulkrecord.NewPoolStore(storage.Pool.Chunks), bulkOnce)
	if nil != err {
		return err
	}

	word, err := counterword.New(storage.Pool.CounterWords, name, capacity, deadline, priceBaseUnits)
	if nil != err {
		return err
	}

	globalData.edition = &editionData{
		log:  log,
		name: name,
		bulk: bulk,
		word: word,
	}
	globalData.initialised = true

	log.Infof("edition: %q  issued: %d  capacity: %d", name, word.Issued(), word.Capacity())
	return nil
}

// Finalise - release the edition
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.edition = nil
	globalData.initialised = false
	return nil
}

// Get - the Edition interface of the global instance
func Get() Edition {
	globalData.Lock()
	defer globalData.Unlock()
	return globalData.edition
}
