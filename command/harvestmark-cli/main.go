// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "harvestmark-cli"
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
			Name:  "connect, x",
			Value: "",
			Usage: "*harvestmarkd host/IP and port, `HOST:PORT`",
		},
		cli.StringFlag{
			Name:  "credential, p",
			Value: "",
			Usage: "*credential text the caller identity is derived from",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "create",
			Usage:     "register a new production record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "produce, a",
					Value: "",
					Usage: "*produce name `STRING`",
				},
				cli.Uint64Flag{
					Name:  "volume, q",
					Usage: "*production volume `N`",
				},
				cli.StringFlag{
					Name:  "location, l",
					Value: "",
					Usage: "*origin location `STRING`",
				},
				cli.StringSliceFlag{
					Name:  "descriptor, d",
					Usage: "*classification descriptor `TAG`, repeatable",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "transfer",
			Usage:     "reassign ownership of a record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "sequence, s",
					Usage: "*record sequence id `N`",
				},
				cli.StringFlag{
					Name:  "recipient, r",
					Value: "",
					Usage: "*recipient identity `IDENTITY`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "grant",
			Usage:     "record an access grant",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "sequence, s",
					Usage: "*record sequence id `N`",
				},
				cli.StringFlag{
					Name:  "target, t",
					Value: "",
					Usage: "*target identity `IDENTITY`",
				},
				cli.BoolFlag{
					Name:  "deny, n",
					Usage: " store an explicit denial instead of an allowance",
				},
			},
			Action: runGrant,
		},
		{
			Name:      "revoke",
			Usage:     "remove an access grant",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "sequence, s",
					Usage: "*record sequence id `N`",
				},
				cli.StringFlag{
					Name:  "target, t",
					Value: "",
					Usage: "*target identity `IDENTITY`",
				},
			},
			Action: runRevoke,
		},
		{
			Name:      "append",
			Usage:     "add supplementary descriptors to a record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "sequence, s",
					Usage: "*record sequence id `N`",
				},
				cli.StringSliceFlag{
					Name:  "descriptor, d",
					Usage: "*classification descriptor `TAG`, repeatable",
				},
			},
			Action: runAppend,
		},
		{
			Name:      "modify",
			Usage:     "replace the descriptive fields of a record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "sequence, s",
					Usage: "*record sequence id `N`",
				},
				cli.StringFlag{
					Name:  "produce, a",
					Value: "",
					Usage: "*produce name `STRING`",
				},
				cli.Uint64Flag{
					Name:  "volume, q",
					Usage: "*production volume `N`",
				},
				cli.StringFlag{
					Name:  "location, l",
					Value: "",
					Usage: "*origin location `STRING`",
				},
				cli.StringSliceFlag{
					Name:  "descriptor, d",
					Usage: "*classification descriptor `TAG`, repeatable",
				},
			},
			Action: runModify,
		},
		{
			Name:      "purge",
			Usage:     "permanently delete a record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "sequence, s",
					Usage: "*record sequence id `N`",
				},
			},
			Action: runPurge,
		},
		{
			Name:      "restrict",
			Usage:     "place a record under emergency restriction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "sequence, s",
					Usage: "*record sequence id `N`",
				},
			},
			Action: runRestrict,
		},
		{
			Name:      "verify",
			Usage:     "check a record against an expected cultivator",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "sequence, s",
					Usage: "*record sequence id `N`",
				},
				cli.StringFlag{
					Name:  "cultivator, o",
					Value: "",
					Usage: "*expected cultivator identity `IDENTITY`",
				},
			},
			Action: runVerify,
		},
		{
			Name:   "info",
			Usage:  "display harvestmarkd status",
			Action: runInfo,
		},
		{
			Name:   "identity",
			Usage:  "display the identity derived from the credential",
			Action: runIdentity,
		},
		{
			Name:  "version",
			Usage: "display version string",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		m := &metadata{
			connect: c.GlobalString("connect"),
			verbose: c.GlobalBool("verbose"),
			e:       app.ErrWriter,
			w:       app.Writer,
		}
		if nil == app.Metadata {
			app.Metadata = make(map[string]interface{})
		}
		app.Metadata["config"] = m
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
