// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/harvestmark-inc/harvestmarkd/fault"
	"github.com/harvestmark-inc/harvestmarkd/identity"
	"github.com/harvestmark-inc/harvestmarkd/mode"
	"github.com/harvestmark-inc/harvestmarkd/registry"
	"github.com/harvestmark-inc/harvestmarkd/rpc/ratelimit"
)

// Record - type for the RPC
type Record struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
	Registry     registry.Registry
}

const (
	rateLimitRecord = 200
	rateBurstRecord = 100
)

func New(log *logger.L, isNormalMode func(mode.Mode) bool, reg registry.Registry) *Record {
	return &Record{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitRecord, rateBurstRecord),
		IsNormalMode: isNormalMode,
		Registry:     reg,
	}
}

// Record registration
// -------------------

// CreateArguments - arguments for RPC
type CreateArguments struct {
	Caller      identity.Identity `json:"caller"`
	Produce     string            `json:"produce"`
	Volume      uint64            `json:"volume,string"`
	Location    string            `json:"location"`
	Descriptors []string          `json:"descriptors"`
}

// CreateReply - result from create RPC
type CreateReply struct {
	SequenceId uint64 `json:"sequenceId,string"`
}

// Create - register a new production record
func (rec *Record) Create(arguments *CreateArguments, reply *CreateReply) error {

	if err := ratelimit.Limit(rec.Limiter); nil != err {
		return err
	}

	log := rec.Log
	log.Infof("Record.Create: %+v", arguments)

	if !rec.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	sequenceId, err := rec.Registry.Create(arguments.Caller, arguments.Produce, arguments.Volume, arguments.Location, arguments.Descriptors)
	if nil != err {
		return err
	}

	reply.SequenceId = sequenceId
	return nil
}

// Record modification
// -------------------

// ModifyArguments - arguments for RPC
type ModifyArguments struct {
	Caller      identity.Identity `json:"caller"`
	SequenceId  uint64            `json:"sequenceId,string"`
	Produce     string            `json:"produce"`
	Volume      uint64            `json:"volume,string"`
	Location    string            `json:"location"`
	Descriptors []string          `json:"descriptors"`
}

// ModifyReply - result from modify RPC
type ModifyReply struct {
	Modified bool `json:"modified"`
}

// Modify - replace the descriptive fields of a record
func (rec *Record) Modify(arguments *ModifyArguments, reply *ModifyReply) error {

	if err := ratelimit.Limit(rec.Limiter); nil != err {
		return err
	}

	log := rec.Log
	log.Infof("Record.Modify: %+v", arguments)

	if !rec.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	err := rec.Registry.Modify(arguments.Caller, arguments.SequenceId, arguments.Produce, arguments.Volume, arguments.Location, arguments.Descriptors)
	if nil != err {
		return err
	}

	reply.Modified = true
	return nil
}

// Descriptor supplement
// ---------------------

// AppendArguments - arguments for RPC
type AppendArguments struct {
	Caller      identity.Identity `json:"caller"`
	SequenceId  uint64            `json:"sequenceId,string"`
	Descriptors []string          `json:"descriptors"`
}

// AppendReply - result from append RPC
type AppendReply struct {
	Descriptors []string `json:"descriptors"`
}

// Append - add supplementary descriptors to a record
func (rec *Record) Append(arguments *AppendArguments, reply *AppendReply) error {

	if err := ratelimit.Limit(rec.Limiter); nil != err {
		return err
	}

	log := rec.Log
	log.Infof("Record.Append: %+v", arguments)

	if !rec.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	merged, err := rec.Registry.Append(arguments.Caller, arguments.SequenceId, arguments.Descriptors)
	if nil != err {
		return err
	}

	reply.Descriptors = merged
	return nil
}

// Record removal
// --------------

// PurgeArguments - arguments for RPC
type PurgeArguments struct {
	Caller     identity.Identity `json:"caller"`
	SequenceId uint64            `json:"sequenceId,string"`
}

// PurgeReply - result from purge RPC
type PurgeReply struct {
	Purged bool `json:"purged"`
}

// Purge - permanently delete a record
func (rec *Record) Purge(arguments *PurgeArguments, reply *PurgeReply) error {

	if err := ratelimit.Limit(rec.Limiter); nil != err {
		return err
	}

	log := rec.Log
	log.Infof("Record.Purge: %+v", arguments)

	if !rec.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	err := rec.Registry.Purge(arguments.Caller, arguments.SequenceId)
	if nil != err {
		return err
	}

	reply.Purged = true
	return nil
}

// Emergency restriction
// ---------------------

// RestrictArguments - arguments for RPC
type RestrictArguments struct {
	Caller     identity.Identity `json:"caller"`
	SequenceId uint64            `json:"sequenceId,string"`
}

// RestrictReply - result from restrict RPC
type RestrictReply struct {
	Restricted bool `json:"restricted"`
}

// Restrict - place a record under emergency restriction
func (rec *Record) Restrict(arguments *RestrictArguments, reply *RestrictReply) error {

	if err := ratelimit.Limit(rec.Limiter); nil != err {
		return err
	}

	log := rec.Log
	log.Infof("Record.Restrict: %+v", arguments)

	if !rec.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	err := rec.Registry.Restrict(arguments.Caller, arguments.SequenceId)
	if nil != err {
		return err
	}

	reply.Restricted = true
	return nil
}
