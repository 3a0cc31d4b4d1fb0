// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/harvestmark-inc/harvestmarkd/fault"
	"github.com/harvestmark-inc/harvestmarkd/height"
	"github.com/harvestmark-inc/harvestmarkd/identity"
)

// Provenance - result of an authenticity verification
type Provenance struct {
	IsAuthentic   bool   `json:"isAuthentic"`
	CurrentHeight uint64 `json:"currentHeight,string"`
	Age           uint64 `json:"age,string"`
	FarmerMatch   bool   `json:"farmerMatch"`
}

// Verify - check a record against an expected cultivator
//
// existence is checked before permission so a caller without a grant
// still learns whether the id exists; this is deliberate, the sequence
// ids are not secret
func (reg *registryData) Verify(caller identity.Identity, sequenceId uint64, expectedCultivator identity.Identity) (*Provenance, error) {
	reg.Lock()
	defer reg.Unlock()

	r, err := reg.Fetch(sequenceId)
	if nil != err {
		return nil, err
	}

	if !canAct(opVerify, r, caller, sequenceId) {
		return nil, fault.PermissionDenied
	}

	currentHeight := height.Height()
	age := uint64(0)
	if currentHeight > r.Height {
		age = currentHeight - r.Height
	}

	match := r.Cultivator == expectedCultivator

	return &Provenance{
		IsAuthentic:   match,
		CurrentHeight: currentHeight,
		Age:           age,
		FarmerMatch:   match,
	}, nil
}
