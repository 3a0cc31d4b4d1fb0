// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/harvestmark-inc/harvestmarkd/fault"
	"github.com/harvestmark-inc/harvestmarkd/identity"
)

var (
	errMissingConnect    = fault.InvalidError("connect is not set")
	errMissingCredential = fault.InvalidError("credential is not set")
	errMissingSequenceId = fault.InvalidError("sequence id is not set")
)

// common command metadata
func mustMetadata(c *cli.Context) *metadata {
	return c.App.Metadata["config"].(*metadata)
}

// the daemon address, required for every network command
func checkConnect(c *cli.Context) (string, error) {
	connect := c.GlobalString("connect")
	if "" == connect {
		return "", errMissingConnect
	}
	return connect, nil
}

// the caller identity, derived from the global credential text
func callerIdentity(c *cli.Context) (identity.Identity, error) {
	credential := c.GlobalString("credential")
	if "" == credential {
		return identity.Identity{}, errMissingCredential
	}
	return identity.Derive([]byte(credential)), nil
}

// a base58 identity from a command flag
func identityFlag(c *cli.Context, name string) (identity.Identity, error) {
	return identity.FromBase58(c.String(name))
}

// the record sequence id from a command flag
func sequenceIdFlag(c *cli.Context) (uint64, error) {
	sequenceId := c.Uint64("sequence")
	if 0 == sequenceId {
		return 0, errMissingSequenceId
	}
	return sequenceId, nil
}
