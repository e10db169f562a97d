// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"github.com/mintmark-io/mintmarkd/address"
	"github.com/mintmark-io/mintmarkd/bulkrecord"
	"github.com/mintmark-io/mintmarkd/fault"
	"github.com/mintmark-io/mintmarkd/storage"
)

// Transfer - move one token to a new owner
//
// from must be the currently resolved owner; to may be the burn
// sentinel but never nil.  A token resting on the burn sentinel is
// inert and can never transfer onwards.  On success the overlay entry
// is written, both balance ledger entries adjusted by one, and any
// single-token approval cleared - all staged into trx so the change
// is all-or-nothing.
func Transfer(trx storage.Transaction, bulk *bulkrecord.Record, id uint64, from address.Address, to address.Address) error {

	current, err := OwnerOf(trx, bulk, id)
	if nil != err {
		return err
	}

	if current != from {
		return fault.NotTokenOwner
	}
	if current.IsBurn() {
		return fault.TokenBurned
	}
	if to.IsNil() {
		return fault.NilRecipient
	}

	trx.Put(storage.Pool.Overlay, idKey(id), to.Bytes())
	adjustBalance(trx, from, -1)
	adjustBalance(trx, to, +1)
	trx.Delete(storage.Pool.Approvals, idKey(id))

	return nil
}

// Approve - record a single token approval for an operator
//
// granted by the resolved owner; a nil operator clears the entry.
// Approvals are also cleared implicitly by every transfer.
func Approve(trx storage.Transaction, bulk *bulkrecord.Record, id uint64, owner address.Address, operator address.Address) error {

	current, err := OwnerOf(trx, bulk, id)
	if nil != err {
		return err
	}
	if current != owner {
		return fault.NotTokenOwner
	}
	if current.IsBurn() {
		return fault.TokenBurned
	}

	if operator.IsNil() {
		trx.Delete(storage.Pool.Approvals, idKey(id))
		return nil
	}

	trx.Put(storage.Pool.Approvals, idKey(id), operator.Bytes())
	return nil
}

// CreateMinted - record ownership of freshly minted ids
//
// minted tokens have no bulk chunk, so each one gets an overlay entry
// immediately and the owner's ledger entry absorbs the whole range;
// queries then treat minted and bulk tokens identically
func CreateMinted(trx storage.Transaction, first uint64, last uint64, owner address.Address) {
	for id := first; id <= last; id += 1 {
		trx.Put(storage.Pool.Overlay, idKey(id), owner.Bytes())
	}
	adjustBalance(trx, owner, int64(last-first+1))
}
