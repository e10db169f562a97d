// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pricewatcher - live mint price updates from a file
//
// An operator writes the per-unit price in base units to a plain text
// file; the watcher applies every change to the running edition
// without a restart.
package pricewatcher

import (
	"io/ioutil"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/mintmark-io/mintmarkd/edition"
	"github.com/mintmark-io/mintmarkd/fault"
)

var globalData struct {
	sync.Mutex
	log      *logger.L
	watcher  *fsnotify.Watcher
	edition  edition.Edition
	filePath string
	shutdown chan struct{}

	// set once during initialise
	initialised bool
}

// Initialise - apply the current file price and watch for changes
func Initialise(priceFile string, e edition.Edition) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("pricewatcher")
	log.Info("starting…")

	filePath, err := filepath.Abs(filepath.Clean(priceFile))
	if nil != err {
		return err
	}
	if _, err := os.Stat(filePath); nil != err {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return err
	}

	// watch the directory: editors replace rather than rewrite files
	if err := watcher.Add(filepath.Dir(filePath)); nil != err {
		_ = watcher.Close()
		return err
	}

	globalData.log = log
	globalData.watcher = watcher
	globalData.edition = e
	globalData.filePath = filePath
	globalData.shutdown = make(chan struct{})
	globalData.initialised = true

	applyPrice(log, e, filePath)

	go watchLoop(log, watcher, e, filePath, globalData.shutdown)

	return nil
}

// Finalise - stop watching
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	close(globalData.shutdown)
	_ = globalData.watcher.Close()
	globalData.initialised = false
	return nil
}

func watchLoop(log *logger.L, watcher *fsnotify.Watcher, e edition.Edition, filePath string, shutdown <-chan struct{}) {
	for {
		select {
		case <-shutdown:
			log.Info("finished")
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			log.Debugf("file event: %v", event)

			if path.Base(event.Name) != path.Base(filePath) {
				continue
			}
			if isRemove(event) {
				log.Warnf("price file removed: %s", filePath)
				continue
			}
			if isChange(event) {
				applyPrice(log, e, filePath)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Errorf("watcher error: %s", err)
		}
	}
}

// read the price file and set the edition unit price
//
// a malformed or rejected price is logged and skipped; the previous
// price stays in effect
func applyPrice(log *logger.L, e edition.Edition, filePath string) {
	data, err := ioutil.ReadFile(filePath)
	if nil != err {
		log.Errorf("price file read error: %s", err)
		return
	}

	text := strings.TrimSpace(string(data))
	price, err := strconv.ParseUint(text, 10, 64)
	if nil != err {
		log.Errorf("invalid price: %q  error: %s", text, err)
		return
	}

	if err := e.SetUnitPrice(price); nil != err {
		log.Errorf("set price: %d  error: %s", price, err)
		return
	}
	log.Infof("price set: %d", price)
}

func isRemove(event fsnotify.Event) bool {
	return "" == event.Name ||
		event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func isChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
