// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/harvestmark-inc/harvestmarkd/fault"
	"github.com/harvestmark-inc/harvestmarkd/identity"
)

// Transfer - reassign ownership of a record
//
// only the cultivator field changes; height, fields and any access
// grants stay exactly as they were, so the provenance trail remains
// readable by previously granted parties
func (reg *registryData) Transfer(caller identity.Identity, sequenceId uint64, recipient identity.Identity) error {
	reg.Lock()
	defer reg.Unlock()

	if recipient.IsZero() {
		return fault.MissingParameters
	}

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

	r.Cultivator = recipient
	err = storeRecord(trx, sequenceId, r)
	if nil != err {
		trx.Abort()
		return err
	}

	err = trx.Commit()
	if nil != err {
		return err
	}

	reg.log.Infof("transfer: id: %d  from: %s  to: %s", sequenceId, caller, recipient)

	return nil
}
