// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Cache - stage batched writes so reads inside an open transaction
// see their own updates
//
// a staged delete is reported as found with the delete operation so
// the reader never falls through to the stale database value
type Cache interface {
	Get(string) ([]byte, int, bool)
	Set(int, string, []byte)
	Clear()
}

const (
	dbPut = iota
	dbDelete
)

const (
	defaultTimeout    = 1 * time.Minute
	defaultExpiration = 2 * time.Minute
)

type dbCache struct {
	cache *cache.Cache
}

type cacheData struct {
	op    int
	value []byte
}

func newCache() Cache {
	return &dbCache{
		cache: cache.New(defaultTimeout, defaultExpiration),
	}
}

func (c *dbCache) Get(key string) ([]byte, int, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return []byte{}, dbPut, false
	}

	data := obj.(cacheData)
	return data.value, data.op, true
}

func (c *dbCache) Set(op int, key string, value []byte) {
	c.cache.Set(key, cacheData{op: op, value: value}, defaultExpiration)
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}
