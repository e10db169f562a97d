// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runNodeInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := getClient(m)
	if err != nil {
		return err
	}
	defer client.Close()

	response, err := client.GetNodeInfoCompat()
	if err != nil {
		return err
	}

	printJson(m.w, response)
	return nil
}
