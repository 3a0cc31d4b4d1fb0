// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/harvestmark-inc/harvestmarkd/command/harvestmark-cli/rpccalls"
)

func runInfo(c *cli.Context) error {

	m := mustMetadata(c)

	connect, err := checkConnect(c)
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetInfoCompat()
	if nil != err {
		return err
	}
	response["_connection"] = connect

	printJson(m.w, response)

	return nil
}

func runIdentity(c *cli.Context) error {

	m := mustMetadata(c)

	caller, err := callerIdentity(c)
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "%s\n", caller)

	return nil
}
