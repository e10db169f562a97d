// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/mintmark-io/mintmarkd/command/mintmark-cli/configuration"
)

func runSetup(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("identity"))
	if err != nil {
		return err
	}

	connect, err := checkConnect(c.String("connect"))
	if err != nil {
		return err
	}

	description, err := checkDescription(c.String("description"))
	if err != nil {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "config: %s\n", m.file)
		fmt.Fprintf(m.e, "connect: %s\n", connect)
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
	}

	// create the folder hierarchy for configuration if not existing
	configDir := path.Dir(m.file)
	d, err := checkFileExists(configDir)
	if err != nil {
		if err := os.MkdirAll(configDir, 0o750); err != nil {
			return err
		}
	} else if !d {
		return fmt.Errorf("path: %q is not a directory", configDir)
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptNewPassword()
		if nil != err {
			return err
		}
	}

	identity, err := configuration.MakeIdentity(name, description, password)
	if nil != err {
		return err
	}

	config := &configuration.Configuration{
		DefaultIdentity: name,
		Connect:         connect,
	}

	err = config.AddIdentity(identity)
	if nil != err {
		return err
	}

	m.config = config
	m.save = true

	return nil
}
