// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/harvestmark-inc/harvestmarkd/counter"
	"github.com/harvestmark-inc/harvestmarkd/mode"
	"github.com/harvestmark-inc/harvestmarkd/registry"
	"github.com/harvestmark-inc/harvestmarkd/rpc/node"
	"github.com/harvestmark-inc/harvestmarkd/rpc/owner"
	"github.com/harvestmark-inc/harvestmarkd/rpc/provenance"
	"github.com/harvestmark-inc/harvestmarkd/rpc/record"
)

// Create - a server with all ledger services registered
func Create(log *logger.L, version string, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()
	reg := registry.Get()

	server := rpc.NewServer()

	_ = server.Register(record.New(log, mode.Is, reg))
	_ = server.Register(owner.New(log, mode.Is, reg))
	_ = server.Register(provenance.New(log, reg))
	_ = server.Register(node.New(log, start, version, rpcCount, reg))

	return server
}
