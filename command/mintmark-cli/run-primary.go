// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runPrimary(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkAccountWithDefault(c.String("owner"), m.config)
	if err != nil {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
	}

	client, err := getClient(m)
	if err != nil {
		return err
	}
	defer client.Close()

	response, err := client.IsPrimary(owner)
	if err != nil {
		return err
	}

	printJson(m.w, response)
	return nil
}
