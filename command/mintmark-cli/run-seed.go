// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/mintmark-io/mintmarkd/command/mintmark-cli/configuration"
)

func runSeed(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	identity, err := m.config.Identity(c.GlobalString("identity"))
	if err != nil {
		return err
	}

	var private *configuration.Private

	password := c.GlobalString("password")
	if "" == password {
		private, err = promptAndCheckPassword(identity)
	} else {
		private, err = configuration.DecryptIdentity(password, identity)
	}
	if nil != err {
		return err
	}

	type seedDisplay struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Address     string `json:"address"`
		Seed        string `json:"seed"`
	}
	output := seedDisplay{
		Name:        identity.Name,
		Description: private.Description,
		Address:     private.Address.String(),
		Seed:        private.Seed,
	}

	printJson(m.w, output)
	return nil
}
