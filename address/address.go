// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - fixed width owner addresses
//
// An address is the SHA3-256 digest of an ed25519 public key truncated
// to 20 bytes.  The text form is Base58 of the address bytes followed
// by a 4 byte SHA3-256 checksum.
//
// Two values are reserved: the zero address is "nil" and is never a
// valid owner or recipient; the all-ones address is the burn sentinel,
// a valid transfer destination that can never transfer onwards.
package address

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/mintmark-io/mintmarkd/fault"
)

// Length - number of bytes in an address
const Length = 20

// number of checksum bytes appended to the text form
const checksumLength = 4

// Address - fixed width owner identifier
type Address [Length]byte

// Nil - the invalid zero address
var Nil Address

// Burn - the burn sentinel address
var Burn Address

func init() {
	for i := 0; i < Length; i += 1 {
		Burn[i] = 0xff
	}
}

// FromPublicKey - derive an address from an ed25519 public key
func FromPublicKey(publicKey ed25519.PublicKey) Address {
	digest := sha3.Sum256(publicKey)
	var a Address
	copy(a[:], digest[:Length])
	return a
}

// FromBytes - convert and validate a byte slice
func FromBytes(a *Address, buffer []byte) error {
	if Length != len(buffer) {
		return fault.InvalidAddressLength
	}
	copy(a[:], buffer)
	return nil
}

// FromBase58 - decode and checksum-verify the text form
func FromBase58(s string) (Address, error) {
	var a Address

	buffer, err := base58.Decode(s)
	if nil != err {
		return a, fault.InvalidAddressChecksum
	}
	if Length+checksumLength != len(buffer) {
		return a, fault.InvalidAddressLength
	}

	digest := sha3.Sum256(buffer[:Length])
	if !bytes.Equal(digest[:checksumLength], buffer[Length:]) {
		return a, fault.InvalidAddressChecksum
	}

	copy(a[:], buffer[:Length])
	return a, nil
}

// IsNil - check for the zero address
func (a Address) IsNil() bool {
	return Nil == a
}

// IsBurn - check for the burn sentinel
func (a Address) IsBurn() bool {
	return Burn == a
}

// Compare - bytewise ordering, the same ordering required of bulk
// creation input
func (a Address) Compare(b Address) int {
	return bytes.Compare(a[:], b[:])
}

// Bytes - the raw address bytes
func (a Address) Bytes() []byte {
	return a[:]
}

// String - Base58 with checksum
func (a Address) String() string {
	buffer := make([]byte, 0, Length+checksumLength)
	buffer = append(buffer, a[:]...)
	digest := sha3.Sum256(a[:])
	buffer = append(buffer, digest[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - for JSON-RPC transport
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - for JSON-RPC transport
func (a *Address) UnmarshalText(s []byte) error {
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*a = decoded
	return nil
}
