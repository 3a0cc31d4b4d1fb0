// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/harvestmark-inc/harvestmarkd/fault"
	"github.com/harvestmark-inc/harvestmarkd/identity"
)

// Modify - replace the descriptive fields of a record
//
// ownership and the registration height never change here; a record
// keeps its original position in the provenance timeline no matter how
// often its description is corrected
func (reg *registryData) Modify(caller identity.Identity, sequenceId uint64, produce string, volume uint64, location string, descriptors []string) error {
	reg.Lock()
	defer reg.Unlock()

	trx, err := newTransaction()
	if nil != err {
		return err
	}

	r, err := fetchRecord(trx, sequenceId)
	if nil != err {
		trx.Abort()
		return err
	}

	if r.Cultivator != caller {
		trx.Abort()
		return fault.OwnershipMismatch
	}

	if r.Locked {
		trx.Abort()
		return fault.RecordIsLocked
	}

	r.Produce = produce
	r.Volume = volume
	r.Location = location
	r.Descriptors = descriptors

	// storeRecord validates the replacement fields during pack
	err = storeRecord(trx, sequenceId, r)
	if nil != err {
		trx.Abort()
		return err
	}

	err = trx.Commit()
	if nil != err {
		return err
	}

	reg.log.Infof("modify: id: %d  produce: %q", sequenceId, produce)

	return nil
}
