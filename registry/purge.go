// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/harvestmark-inc/harvestmarkd/fault"
	"github.com/harvestmark-inc/harvestmarkd/identity"
)

// Purge - permanently delete a record
//
// sequence ids are never reused, so the purged id stays a hole in the
// sequence forever. Grants for the record are left behind; they are
// harmless without a record and a future id can never collide with them.
func (reg *registryData) Purge(caller identity.Identity, sequenceId uint64) error {
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

	trx.Delete(reg.records, sequenceKey(sequenceId))

	count, _ := trx.GetN(reg.controls, recordCountKey)
	if count > 0 {
		trx.PutN(reg.controls, recordCountKey, count-1)
	}

	err = trx.Commit()
	if nil != err {
		return err
	}

	reg.log.Infof("purge: id: %d", sequenceId)

	return nil
}
