// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bulkrecord

import (
	"bytes"
	"encoding/binary"
	"sort"

	"github.com/mintmark-io/mintmarkd/address"
	"github.com/mintmark-io/mintmarkd/fault"
)

// packed chunk layout: first id ⧺ address ⧺ address …
const headerLength = 8

// per chunk data cached from the packed headers
type chunkInfo struct {
	firstId uint64
	count   uint64
}

// Record - an ordered set of write-once chunks
//
// mutation is serialized by the caller; reads after creation are safe
// without locking since chunks are immutable
type Record struct {
	store       ChunkStore
	chunks      []chunkInfo
	singleChunk bool
}

// New - attach a record to its chunk store
//
// existing chunks are recovered from the store; singleChunk restricts
// the record to exactly one Append call for its whole lifetime
func New(store ChunkStore, singleChunk bool) (*Record, error) {
	r := &Record{
		store:       store,
		singleChunk: singleChunk,
	}

	for number := uint64(0); number < store.Count(); number += 1 {
		packed := store.Get(number)
		if len(packed) <= headerLength ||
			0 != (len(packed)-headerLength)%address.Length {
			return nil, fault.InvalidChunkLength
		}
		r.chunks = append(r.chunks, chunkInfo{
			firstId: binary.BigEndian.Uint64(packed[:headerLength]),
			count:   uint64(len(packed)-headerLength) / address.Length,
		})
	}

	return r, nil
}

// HighWater - the last id assigned to a bulk chunk, 0 if none
func (r *Record) HighWater() uint64 {
	if 0 == len(r.chunks) {
		return 0
	}
	last := r.chunks[len(r.chunks)-1]
	return last.firstId + last.count - 1
}

// TotalOwners - total addresses across all chunks
func (r *Record) TotalOwners() uint64 {
	n := uint64(0)
	for _, c := range r.chunks {
		n += c.count
	}
	return n
}

// CanAppend - full validation of one chunk of creation input
//
// the single linear pass rejects duplicates at the same time as it
// checks ordering, so a caller can validate before consuming any ids
func (r *Record) CanAppend(owners []address.Address) error {

	if r.singleChunk && 0 != len(r.chunks) {
		return fault.AlreadyCreated
	}
	if 0 == len(owners) {
		return fault.EmptyChunk
	}

	for i, owner := range owners {
		if owner.IsNil() {
			return fault.NilAddress
		}
		if 0 != i && owners[i-1].Compare(owner) >= 0 {
			return fault.InvalidAddressOrder
		}
	}
	return nil
}

// Append - create one chunk
//
// owners must satisfy CanAppend; ids are assigned consecutively from
// firstId, which must lie above every previously assigned id.
// Returns the last assigned id.
func (r *Record) Append(firstId uint64, owners []address.Address) (uint64, error) {

	if err := r.CanAppend(owners); nil != err {
		return 0, err
	}
	if 0 == firstId || firstId <= r.HighWater() {
		return 0, fault.InvalidCount
	}

	packed := make([]byte, headerLength, headerLength+len(owners)*address.Length)
	binary.BigEndian.PutUint64(packed, firstId)

	for _, owner := range owners {
		packed = append(packed, owner.Bytes()...)
	}

	r.store.Put(uint64(len(r.chunks)), packed)
	r.chunks = append(r.chunks, chunkInfo{
		firstId: firstId,
		count:   uint64(len(owners)),
	})

	return firstId + uint64(len(owners)) - 1, nil
}

// Lookup - O(1) offset read of the owner assigned to id at creation
func (r *Record) Lookup(id uint64) (address.Address, error) {

	number, ok := r.chunkFor(id)
	if !ok {
		return address.Nil, fault.TokenNotFound
	}

	packed := r.store.Get(number)
	offset := headerLength + (id-r.chunks[number].firstId)*address.Length

	var owner address.Address
	if err := address.FromBytes(&owner, packed[offset:offset+address.Length]); nil != err {
		return address.Nil, err
	}
	return owner, nil
}

// Membership - binary search each chunk for an address
//
// reports found/not-found only; since chunk content is unique an
// address can hold at most one bulk-origin token per chunk
func (r *Record) Membership(owner address.Address) bool {
	for number := range r.chunks {
		packed := r.store.Get(uint64(number))
		count := int(r.chunks[number].count)

		i := sort.Search(count, func(i int) bool {
			offset := headerLength + i*address.Length
			return bytes.Compare(packed[offset:offset+address.Length], owner.Bytes()) >= 0
		})

		if i < count {
			offset := headerLength + i*address.Length
			if bytes.Equal(packed[offset:offset+address.Length], owner.Bytes()) {
				return true
			}
		}
	}
	return false
}

// locate the chunk containing id
func (r *Record) chunkFor(id uint64) (uint64, bool) {
	n := len(r.chunks)

	// first chunk with firstId above id, candidate is its predecessor
	i := sort.Search(n, func(i int) bool {
		return r.chunks[i].firstId > id
	})
	if 0 == i {
		return 0, false
	}

	c := r.chunks[i-1]
	if id >= c.firstId+c.count {
		return 0, false
	}
	return uint64(i - 1), true
}
