// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package provenance

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/harvestmark-inc/harvestmarkd/identity"
	"github.com/harvestmark-inc/harvestmarkd/registry"
	"github.com/harvestmark-inc/harvestmarkd/rpc/ratelimit"
)

// Provenance - type for the RPC
//
// verification is read-only and stays available during resynchronise
type Provenance struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry registry.Registry
}

const (
	rateLimitProvenance = 200
	rateBurstProvenance = 100
)

func New(log *logger.L, reg registry.Registry) *Provenance {
	return &Provenance{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitProvenance, rateBurstProvenance),
		Registry: reg,
	}
}

// VerifyArguments - arguments for RPC
type VerifyArguments struct {
	Caller             identity.Identity `json:"caller"`
	SequenceId         uint64            `json:"sequenceId,string"`
	ExpectedCultivator identity.Identity `json:"expectedCultivator"`
}

// VerifyReply - result from verify RPC
type VerifyReply struct {
	Provenance *registry.Provenance `json:"provenance"`
}

// Verify - check a record against an expected cultivator
func (p *Provenance) Verify(arguments *VerifyArguments, reply *VerifyReply) error {

	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	log := p.Log
	log.Infof("Provenance.Verify: %+v", arguments)

	provenance, err := p.Registry.Verify(arguments.Caller, arguments.SequenceId, arguments.ExpectedCultivator)
	if nil != err {
		return err
	}

	reply.Provenance = provenance
	return nil
}
