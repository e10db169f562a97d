// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/mintmark-io/mintmarkd/command/mintmark-cli/configuration"
)

// show the configuration with the encrypted fields removed
func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	info, err := configuration.GetInfoConfiguration(m.file)
	if err != nil {
		return err
	}

	printJson(m.w, info)
	return nil
}
