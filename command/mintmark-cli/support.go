// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"sort"
	"strings"

	"github.com/mintmark-io/mintmarkd/address"
	"github.com/mintmark-io/mintmarkd/command/mintmark-cli/configuration"
	"github.com/mintmark-io/mintmarkd/command/mintmark-cli/rpccalls"
	"github.com/mintmark-io/mintmarkd/fault"
)

var (
	ErrDuplicateReceiver   = fault.InvalidError("duplicate receiver address")
	ErrRequiredConnect     = fault.InvalidError("connect is required")
	ErrRequiredDescription = fault.InvalidError("description is required")
	ErrRequiredIdentity    = fault.InvalidError("identity is required")
	ErrRequiredPayment     = fault.InvalidError("payment is required")
	ErrRequiredReceiver    = fault.InvalidError("receiver is required")
	ErrRequiredTokenId     = fault.InvalidError("token id is required")
)

// identity is required, but not check the config file
func checkName(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredIdentity
	}

	return name, nil
}

// connect is required
func checkConnect(connect string) (string, error) {
	connect = strings.TrimSpace(connect)
	if "" == connect {
		return "", ErrRequiredConnect
	}

	return connect, nil
}

// description is required
func checkDescription(description string) (string, error) {
	if "" == description {
		return "", ErrRequiredDescription
	}

	return description, nil
}

// token ids are one based so zero marks a missing flag
func checkTokenId(id uint64) (uint64, error) {
	if 0 == id {
		return 0, ErrRequiredTokenId
	}

	return id, nil
}

// an account is either an identity name from the configuration or a
// base58 address
func checkAccount(name string, config *configuration.Configuration) (*address.Address, error) {
	if "" == name {
		return nil, ErrRequiredReceiver
	}

	if id, err := config.Identity(name); nil == err {
		a, err := address.FromBase58(id.Address)
		if nil != err {
			return nil, err
		}
		return &a, nil
	}

	a, err := address.FromBase58(name)
	if nil != err {
		return nil, err
	}
	return &a, nil
}

// blank selects the default identity
func checkAccountWithDefault(name string, config *configuration.Configuration) (*address.Address, error) {
	if "" == name {
		name = config.DefaultIdentity
	}
	return checkAccount(name, config)
}

// split a comma separated receiver list, resolve each name and order
// the result the way bulk creation requires
func checkReceivers(list string, config *configuration.Configuration) ([]address.Address, error) {
	if "" == list {
		return nil, ErrRequiredReceiver
	}

	names := strings.Split(list, ",")
	owners := make([]address.Address, 0, len(names))
	for _, name := range names {
		a, err := checkAccount(strings.TrimSpace(name), config)
		if nil != err {
			return nil, err
		}
		owners = append(owners, *a)
	}

	sort.Slice(owners, func(i, j int) bool {
		return owners[i].Compare(owners[j]) < 0
	})

	for i := 1; i < len(owners); i += 1 {
		if 0 == owners[i-1].Compare(owners[i]) {
			return nil, ErrDuplicateReceiver
		}
	}

	return owners, nil
}

// check if file exists, returns true for a directory
func checkFileExists(name string) (bool, error) {
	s, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return s.IsDir(), nil
}

// open the RPC connection from the configured endpoint
func getClient(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.config.Connect, m.verbose, m.e)
}
