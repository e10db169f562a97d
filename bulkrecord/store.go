// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bulkrecord

import (
	"encoding/binary"

	"github.com/mintmark-io/mintmarkd/storage"
)

// ChunkStore - immutable chunk persistence
//
// chunks are numbered consecutively from zero; a chunk is written
// exactly once and never modified afterwards
type ChunkStore interface {
	Get(number uint64) []byte
	Put(number uint64, packed []byte)
	Count() uint64
}

// in-memory packed slices
type memoryStore struct {
	chunks [][]byte
}

// NewMemoryStore - chunks held inline in memory
func NewMemoryStore() ChunkStore {
	return &memoryStore{}
}

func (m *memoryStore) Get(number uint64) []byte {
	if number >= uint64(len(m.chunks)) {
		return nil
	}
	return m.chunks[number]
}

func (m *memoryStore) Put(number uint64, packed []byte) {
	if number == uint64(len(m.chunks)) {
		m.chunks = append(m.chunks, packed)
	}
}

func (m *memoryStore) Count() uint64 {
	return uint64(len(m.chunks))
}

// chunks as externally referenced blobs in a storage pool
type poolStore struct {
	pool  storage.Handle
	count uint64
}

// NewPoolStore - chunks held in a storage pool, keyed by chunk number
func NewPoolStore(pool storage.Handle) ChunkStore {
	count := uint64(0)
	if element, found := pool.LastElement(); found {
		count = binary.BigEndian.Uint64(element.Key) + 1
	}
	return &poolStore{
		pool:  pool,
		count: count,
	}
}

func chunkKey(number uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, number)
	return key
}

func (p *poolStore) Get(number uint64) []byte {
	if number >= p.count {
		return nil
	}
	return p.pool.Get(chunkKey(number))
}

func (p *poolStore) Put(number uint64, packed []byte) {
	if number != p.count {
		return
	}
	p.pool.Put(chunkKey(number), packed)
	p.count += 1
}

func (p *poolStore) Count() uint64 {
	return p.count
}
