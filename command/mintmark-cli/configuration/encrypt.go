// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/bitmark-inc/go-argon2"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/nacl/secretbox"

	"github.com/mintmark-io/mintmarkd/address"
	"github.com/mintmark-io/mintmarkd/fault"
)

// Private - the decrypted content of one identity
type Private struct {
	Seed        string // hex ed25519 seed
	Address     address.Address
	Description string
}

// MakeIdentity - create a key pair and encrypt its seed with password
func MakeIdentity(name string, description string, password string) (*Identity, error) {

	public, private, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}
	seed := hex.EncodeToString(private.Seed())

	salt, secretKey, err := hashPassword(password)
	if nil != err {
		return nil, err
	}

	data, err := encryptData(seed, secretKey)
	if nil != err {
		return nil, err
	}

	return &Identity{
		Name:        name,
		Description: description,
		Address:     address.FromPublicKey(public).String(),
		Salt:        salt.String(),
		Data:        data,
	}, nil
}

// DecryptIdentity - check if password unlocks data in the configuration file
func DecryptIdentity(password string, identity *Identity) (*Private, error) {

	salt := new(Salt)
	err := salt.UnmarshalText([]byte(identity.Salt))
	if err != nil || identity.Data == "" {
		return nil, fault.InvalidPrivateKey
	}

	key, err := generateKey(password, salt)
	if err != nil {
		return nil, err
	}

	seed, err := decryptData(identity.Data, key)
	if err != nil {
		return nil, fault.WrongPassword
	}

	seedBytes, err := hex.DecodeString(seed)
	if err != nil || ed25519.SeedSize != len(seedBytes) {
		return nil, fault.InvalidPrivateKey
	}
	private := ed25519.NewKeyFromSeed(seedBytes)

	r := Private{
		Seed:        seed,
		Address:     address.FromPublicKey(private.Public().(ed25519.PublicKey)),
		Description: identity.Description,
	}
	return &r, nil
}

func hashPassword(password string) (*Salt, *[32]byte, error) {
	salt, err := MakeSalt()
	if err != nil {
		return nil, nil, err
	}

	cipher, err := generateKey(password, salt)
	if err != nil {
		return nil, nil, err
	}

	return salt, cipher, nil
}

func generateKey(password string, salt *Salt) (*[32]byte, error) {

	saltBytes := salt.Bytes()

	ctx := &argon2.Context{
		Iterations:  5,
		Memory:      1 << 16,
		Parallelism: 4,
		HashLen:     32,
		Mode:        argon2.ModeArgon2i,
		Version:     argon2.Version13,
	}

	hash, err := argon2.Hash(ctx, []byte(password), saltBytes)
	if err != nil {
		return nil, err
	}

	var secretKey [32]byte
	copy(secretKey[:], hash)

	return &secretKey, nil
}

// encrypt a string and convert to hex
func encryptData(data string, secretKey *[32]byte) (string, error) {

	// ensure data not too small or too large
	l := len(data)
	if l < 32 || l >= 16384 {
		return "", fault.CryptoFailed
	}

	// must use a different nonce for each message you encrypt with the
	// same key. Since the nonce here is 192 bits long, a random value
	// provides a sufficiently small probability of repeats.
	var nonce [24]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", fault.CryptoFailed
	}

	// encrypt
	ciphertext := secretbox.Seal(nonce[:], []byte(data), &nonce, secretKey)

	// return as hex string
	return hex.EncodeToString(ciphertext), nil
}

// decrypt a hex string and return plaintext
func decryptData(ciphertext string, secretKey *[32]byte) (string, error) {

	if ciphertext == "" {
		return "", fault.CryptoFailed
	}

	encrypted, err := hex.DecodeString(ciphertext)
	if err != nil {
		return "", err
	}
	if len(encrypted) <= 24 {
		return "", fault.CryptoFailed
	}

	// the nonce used to encrypt is stored alongside the message
	var nonce [24]byte
	copy(nonce[:], encrypted[:24])

	decrypted, ok := secretbox.Open(nil, encrypted[24:], &nonce, secretKey)
	if !ok {
		return "", fault.CryptoFailed
	}

	return string(decrypted), nil
}
