// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/mintmark-io/mintmarkd/command/mintmark-cli/configuration"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	save    bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "mintmark-cli"
	// app.Usage = ""
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "setup",
			Usage:     "initialise mintmark-cli configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*mintmarkd host/IP and port, `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
			},
			Action: runAdd,
		},
		{
			Name:      "issue",
			Usage:     "bulk-create tokens for a list of receivers",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "receivers, r",
					Value: "",
					Usage: "*comma separated identity names or addresses `LIST`",
				},
			},
			Action: runIssue,
		},
		{
			Name:      "mint",
			Usage:     "mint tokens through the supply/time/price gate",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: " identity name or address `ACCOUNT` default is global identity",
				},
				cli.Uint64Flag{
					Name:  "quantity, q",
					Value: 1,
					Usage: " quantity to mint `COUNT`",
				},
				cli.Uint64Flag{
					Name:  "payment, P",
					Value: 0,
					Usage: "*payment in base units `AMOUNT`",
				},
			},
			Action: runMint,
		},
		{
			Name:      "transfer",
			Usage:     "transfer a token to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "token, t",
					Value: 0,
					Usage: "*token id to transfer `ID`",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*identity name or address to receive the token `ACCOUNT`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "burn",
			Usage:     "transfer a token to the burn address",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "token, t",
					Value: 0,
					Usage: "*token id to burn `ID`",
				},
			},
			Action: runBurn,
		},
		{
			Name:      "approve",
			Usage:     "record or clear a single-token approval",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "token, t",
					Value: 0,
					Usage: "*token id to approve `ID`",
				},
				cli.StringFlag{
					Name:  "operator, o",
					Value: "",
					Usage: " identity name or address of operator `ACCOUNT` blank to clear",
				},
			},
			Action: runApprove,
		},
		{
			Name:      "owner",
			Usage:     "display the current owner of a token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "token, t",
					Value: 0,
					Usage: "*token id to look up `ID`",
				},
			},
			Action: runOwner,
		},
		{
			Name:      "balance",
			Usage:     "display the token balance of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or address `ACCOUNT` default is global identity",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "primary",
			Usage:     "check if an account received a token at bulk creation",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or address `ACCOUNT` default is global identity",
				},
			},
			Action: runPrimary,
		},
		{
			Name:      "setprice",
			Usage:     "change the per-unit mint price",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "price, P",
					Value: 0,
					Usage: "*price in base units `AMOUNT`",
				},
			},
			Action: runSetPrice,
		},
		{
			Name:   "status",
			Usage:  "display the edition issuance status",
			Action: runStatus,
		},
		{
			Name:   "info",
			Usage:  "display mintmark-cli status",
			Action: runInfo,
		},
		{
			Name:   "nodeinfo",
			Usage:  "display mintmarkd status",
			Action: runNodeInfo,
		},
		{
			Name:   "seed",
			Usage:  "display the decrypted seed of an identity",
			Action: runSeed,
		},
		{
			Name:  "version",
			Usage: "display mintmark-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command {
			return nil
		}

		p := os.Getenv("XDG_CONFIG_HOME")
		if "" == p {
			return fmt.Errorf("XDG_CONFIG_HOME environment is not set")
		}
		dir, err := checkFileExists(p)
		if nil != err {
			return err
		}
		if !dir {
			return fmt.Errorf("not a directory: %q", p)
		}
		file := path.Join(p, app.Name, app.Name+".json")

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		if "setup" == command {
			// do not run setup if there is an existing configuration
			if _, err := checkFileExists(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				save:    false,
				verbose: verbose,
				e:       e,
				w:       w,
			}

		} else {

			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}

			conf, err := configuration.GetConfiguration(file)
			if nil != err {
				return err
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				config:  conf,
				save:    false,
				verbose: verbose,
				e:       e,
				w:       w,
			}
		}

		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		e := c.App.ErrWriter
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.save {
			if c.GlobalBool("verbose") {
				fmt.Fprintf(e, "updating config file: %s\n", m.file)
			}
			err := configuration.Save(m.file, m.config)
			if nil != err {
				return err
			}
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
