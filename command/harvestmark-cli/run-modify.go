// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/harvestmark-inc/harvestmarkd/command/harvestmark-cli/rpccalls"
)

func runModify(c *cli.Context) error {

	m := mustMetadata(c)

	connect, err := checkConnect(c)
	if nil != err {
		return err
	}
	caller, err := callerIdentity(c)
	if nil != err {
		return err
	}
	sequenceId, err := sequenceIdFlag(c)
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Modify(&rpccalls.ModifyData{
		Caller:      caller,
		SequenceId:  sequenceId,
		Produce:     c.String("produce"),
		Volume:      c.Uint64("volume"),
		Location:    c.String("location"),
		Descriptors: c.StringSlice("descriptor"),
	})
	if nil != err {
		return err
	}

	printJson(m.w, reply)

	return nil
}

func runAppend(c *cli.Context) error {

	m := mustMetadata(c)

	connect, err := checkConnect(c)
	if nil != err {
		return err
	}
	caller, err := callerIdentity(c)
	if nil != err {
		return err
	}
	sequenceId, err := sequenceIdFlag(c)
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Append(&rpccalls.AppendData{
		Caller:      caller,
		SequenceId:  sequenceId,
		Descriptors: c.StringSlice("descriptor"),
	})
	if nil != err {
		return err
	}

	printJson(m.w, reply)

	return nil
}
