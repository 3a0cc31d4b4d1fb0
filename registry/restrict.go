// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/harvestmark-inc/harvestmarkd/fault"
	"github.com/harvestmark-inc/harvestmarkd/identity"
)

// Restrict - place a record under emergency restriction
//
// the owner or the protocol authority may lock a record; once locked
// every mutating operation is refused until the process operator
// intervenes out of band. Restricting an already locked record
// succeeds without change.
func (reg *registryData) Restrict(caller identity.Identity, sequenceId uint64) error {
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

	if !canAct(opRestrict, r, caller, sequenceId) {
		trx.Abort()
		return fault.AuthorityRequired
	}

	if r.Locked {
		trx.Abort()
		return nil
	}

	r.Locked = true
	err = storeRecord(trx, sequenceId, r)
	if nil != err {
		trx.Abort()
		return err
	}

	err = trx.Commit()
	if nil != err {
		return err
	}

	reg.log.Warnf("restrict: id: %d  by: %s", sequenceId, caller)

	return nil
}
