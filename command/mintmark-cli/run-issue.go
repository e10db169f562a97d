// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runIssue(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owners, err := checkReceivers(c.String("receivers"), m.config)
	if err != nil {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "receivers: %d\n", len(owners))
		for _, o := range owners {
			fmt.Fprintf(m.e, "  %s\n", o)
		}
	}

	client, err := getClient(m)
	if err != nil {
		return err
	}
	defer client.Close()

	response, err := client.Issue(owners)
	if err != nil {
		return err
	}

	printJson(m.w, response)
	return nil
}
