// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkTokenId(c.Uint64("token"))
	if err != nil {
		return err
	}

	to, err := checkAccount(c.String("receiver"), m.config)
	if err != nil {
		return err
	}

	from, err := checkAccountWithDefault(c.GlobalString("identity"), m.config)
	if err != nil {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "token: %d\n", id)
		fmt.Fprintf(m.e, "receiver: %s\n", to)
		fmt.Fprintf(m.e, "sender: %s\n", from)
	}

	client, err := getClient(m)
	if err != nil {
		return err
	}
	defer client.Close()

	response, err := client.Transfer(id, from, to)
	if err != nil {
		return err
	}

	printJson(m.w, response)
	return nil
}
