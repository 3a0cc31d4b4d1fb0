// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/harvestmark-inc/harvestmarkd/counter"
	"github.com/harvestmark-inc/harvestmarkd/height"
	"github.com/harvestmark-inc/harvestmarkd/mode"
	"github.com/harvestmark-inc/harvestmarkd/registry"
	"github.com/harvestmark-inc/harvestmarkd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Start    time.Time
	Version  string
	Registry registry.Registry
	counter  *counter.Counter
}

func New(log *logger.L, start time.Time, version string, count *counter.Counter, reg registry.Registry) *Node {
	return &Node{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:    start,
		Version:  version,
		Registry: reg,
		counter:  count,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Mode    string `json:"mode"`
	Height  uint64 `json:"height,string"`
	Records uint64 `json:"records,string"`
	RPCs    uint64 `json:"rpcs"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// Info - return enough information for clients to determine node state
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Mode = mode.CurrentMode()
	reply.Height = height.Height()
	reply.Records = node.Registry.RecordCount()
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}
