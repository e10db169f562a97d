// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"crypto/rand"
	"encoding/hex"
	"io"

	"github.com/mintmark-io/mintmarkd/fault"
)

const (
	saltSize = 16
)

// Salt - random bytes mixed into the password hash
type Salt [saltSize]byte

// MakeSalt - fill a new salt from the system entropy source
func MakeSalt() (*Salt, error) {
	salt := new(Salt)
	if _, err := io.ReadFull(rand.Reader, salt[:]); err != nil {
		return salt, err
	}
	return salt, nil
}

// Bytes - convert a binary salt to byte slice
func (salt Salt) Bytes() []byte {
	return salt[:]
}

// String - hex representation for use by the fmt package (for %s)
func (salt Salt) String() string {
	return hex.EncodeToString(salt.Bytes())
}

// MarshalText - convert salt to hex text
func (salt *Salt) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(saltSize)
	buffer := make([]byte, size)
	hex.Encode(buffer, salt.Bytes())

	return buffer, nil
}

// UnmarshalText - convert hex text into a salt
func (salt *Salt) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}

	if saltSize != byteCount {
		return fault.InvalidSaltLength
	}
	copy(salt[:], buffer)
	return nil
}
