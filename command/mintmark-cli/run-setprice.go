// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runSetPrice(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	price := c.Uint64("price")

	if m.verbose {
		fmt.Fprintf(m.e, "price: %d\n", price)
	}

	client, err := getClient(m)
	if err != nil {
		return err
	}
	defer client.Close()

	response, err := client.SetPrice(price)
	if err != nil {
		return err
	}

	printJson(m.w, response)
	return nil
}
