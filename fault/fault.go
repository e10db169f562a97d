// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyCreated         = ExistsError("bulk record already created")
	AlreadyInitialised     = ExistsError("already initialised")
	CertificateFileExists  = ExistsError("certificate file already exists")
	CorruptBalanceLedger   = RecordError("balance ledger is corrupt")
	CryptoFailed           = ProcessError("unable to perform cryptographic operation")
	DeadlinePassed         = InvalidError("mint deadline has passed")
	EmptyChunk             = LengthError("chunk has no addresses")
	InvalidAddressChecksum = InvalidError("invalid address checksum")
	InvalidAddressLength   = LengthError("invalid address length")
	InvalidAddressOrder    = InvalidError("addresses not strictly ascending")
	InvalidChunkLength     = LengthError("chunk length not a multiple of address size")
	InvalidCount           = InvalidError("invalid count")
	InvalidIpAddress       = InvalidError("invalid ip address")
	InvalidPassword        = InvalidError("invalid password")
	InvalidPasswordLength  = LengthError("invalid password length")
	InvalidPrivateKey      = InvalidError("invalid private key")
	InvalidSaltLength      = LengthError("invalid salt length")
	KeyFileExists          = ExistsError("key file already exists")
	MissingParameters      = LengthError("missing parameters")
	NilAddress             = InvalidError("nil address not allowed")
	NilRecipient           = InvalidError("recipient address is nil")
	NotInitialised         = NotFoundError("not initialised")
	NotTokenOwner          = InvalidError("not token owner")
	PasswordMismatch       = InvalidError("passwords do not match")
	PriceOverflow          = InvalidError("price exceeds representable range")
	PriceTooLow            = InvalidError("price rounds down to zero")
	RateLimiting           = ProcessError("rate limiting active")
	SoldOut                = InvalidError("edition is sold out")
	TokenBurned            = InvalidError("token has been burned")
	TokenNotFound          = NotFoundError("token not found")
	WrongPassword          = InvalidError("wrong password")
	WrongPayment           = InvalidError("payment does not match price")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
