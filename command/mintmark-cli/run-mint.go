// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runMint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	receiver, err := checkAccountWithDefault(c.String("receiver"), m.config)
	if err != nil {
		return err
	}

	quantity := c.Uint64("quantity")
	if 0 == quantity {
		quantity = 1
	}

	payment := c.Uint64("payment")

	if m.verbose {
		fmt.Fprintf(m.e, "receiver: %s\n", receiver)
		fmt.Fprintf(m.e, "quantity: %d\n", quantity)
		fmt.Fprintf(m.e, "payment: %d\n", payment)
	}

	client, err := getClient(m)
	if err != nil {
		return err
	}
	defer client.Close()

	response, err := client.Mint(receiver, quantity, payment)
	if err != nil {
		return err
	}

	printJson(m.w, response)
	return nil
}
