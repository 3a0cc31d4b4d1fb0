// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package owner

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/harvestmark-inc/harvestmarkd/fault"
	"github.com/harvestmark-inc/harvestmarkd/identity"
	"github.com/harvestmark-inc/harvestmarkd/mode"
	"github.com/harvestmark-inc/harvestmarkd/registry"
	"github.com/harvestmark-inc/harvestmarkd/rpc/ratelimit"
)

// Owner - type for the RPC
type Owner struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
	Registry     registry.Registry
}

const (
	rateLimitOwner = 200
	rateBurstOwner = 100
)

func New(log *logger.L, isNormalMode func(mode.Mode) bool, reg registry.Registry) *Owner {
	return &Owner{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitOwner, rateBurstOwner),
		IsNormalMode: isNormalMode,
		Registry:     reg,
	}
}

// Ownership transfer
// ------------------

// TransferArguments - arguments for RPC
type TransferArguments struct {
	Caller     identity.Identity `json:"caller"`
	SequenceId uint64            `json:"sequenceId,string"`
	Recipient  identity.Identity `json:"recipient"`
}

// TransferReply - result from transfer RPC
type TransferReply struct {
	Transferred bool `json:"transferred"`
}

// Transfer - reassign ownership of a record
func (owner *Owner) Transfer(arguments *TransferArguments, reply *TransferReply) error {

	if err := ratelimit.Limit(owner.Limiter); nil != err {
		return err
	}

	log := owner.Log
	log.Infof("Owner.Transfer: %+v", arguments)

	if !owner.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	err := owner.Registry.Transfer(arguments.Caller, arguments.SequenceId, arguments.Recipient)
	if nil != err {
		return err
	}

	reply.Transferred = true
	return nil
}

// Access grants
// -------------

// GrantArguments - arguments for RPC
type GrantArguments struct {
	Caller     identity.Identity `json:"caller"`
	SequenceId uint64            `json:"sequenceId,string"`
	Target     identity.Identity `json:"target"`
	Allowed    bool              `json:"allowed"`
}

// GrantReply - result from grant RPC
type GrantReply struct {
	Granted bool `json:"granted"`
}

// Grant - record an access grant for a record
func (owner *Owner) Grant(arguments *GrantArguments, reply *GrantReply) error {

	if err := ratelimit.Limit(owner.Limiter); nil != err {
		return err
	}

	log := owner.Log
	log.Infof("Owner.Grant: %+v", arguments)

	if !owner.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	err := owner.Registry.Grant(arguments.Caller, arguments.SequenceId, arguments.Target, arguments.Allowed)
	if nil != err {
		return err
	}

	reply.Granted = true
	return nil
}

// RevokeArguments - arguments for RPC
type RevokeArguments struct {
	Caller     identity.Identity `json:"caller"`
	SequenceId uint64            `json:"sequenceId,string"`
	Target     identity.Identity `json:"target"`
}

// RevokeReply - result from revoke RPC
type RevokeReply struct {
	Revoked bool `json:"revoked"`
}

// Revoke - remove an access grant from a record
func (owner *Owner) Revoke(arguments *RevokeArguments, reply *RevokeReply) error {

	if err := ratelimit.Limit(owner.Limiter); nil != err {
		return err
	}

	log := owner.Log
	log.Infof("Owner.Revoke: %+v", arguments)

	if !owner.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	err := owner.Registry.Revoke(arguments.Caller, arguments.SequenceId, arguments.Target)
	if nil != err {
		return err
	}

	reply.Revoked = true
	return nil
}
