// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/mintmark-io/mintmarkd/command/mintmark-cli/configuration"
	"github.com/mintmark-io/mintmarkd/fault"
)

var passwordConsole *terminal.Terminal

func getTerminal() (*terminal.Terminal, int, *terminal.State) {
	oldState, err := terminal.MakeRaw(0)
	if err != nil {
		panic(err)
	}

	if nil != passwordConsole {
		return passwordConsole, 0, oldState
	}

	tmpIO, err := os.OpenFile("/dev/tty", os.O_RDWR, os.ModePerm)
	if nil != err {
		panic("No console")
	}

	passwordConsole = terminal.NewTerminal(tmpIO, "mintmark-cli: ")

	return passwordConsole, 0, oldState
}

// promptNewPassword - prompt for a new password and verify it
func promptNewPassword() (string, error) {
	console, fd, state := getTerminal()
	password, err := console.ReadPassword("Set identity password(length >= 8): ")
	if nil != err {
		fmt.Printf("Get password fail: %s\n", err)
		return "", err
	}
	terminal.Restore(fd, state)

	passwordLen := len(password)
	if passwordLen < 8 {
		return "", fault.InvalidPasswordLength
	}

	console, fd, state = getTerminal()
	verifyPassword, err := console.ReadPassword("Verify password: ")
	if nil != err {
		fmt.Printf("verify failed: %s\n", err)
		return "", fault.PasswordMismatch
	}
	terminal.Restore(fd, state)

	if password != verifyPassword {
		return "", fault.PasswordMismatch
	}

	return password, nil
}

func promptCheckPasswordReader() (string, error) {
	console, fd, state := getTerminal()
	password, err := console.ReadPassword("password: ")
	if nil != err {
		fmt.Printf("Get password fail: %s\n", err)
		return "", err
	}
	terminal.Restore(fd, state)

	return password, nil
}

// promptAndCheckPassword - ask for a password and decrypt the identity
func promptAndCheckPassword(identity *configuration.Identity) (*configuration.Private, error) {
	password, err := promptCheckPasswordReader()
	if nil != err {
		return nil, err
	}

	return configuration.DecryptIdentity(password, identity)
}
