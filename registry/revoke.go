// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/harvestmark-inc/harvestmarkd/access"
	"github.com/harvestmark-inc/harvestmarkd/fault"
	"github.com/harvestmark-inc/harvestmarkd/identity"
)

// Revoke - remove an access grant from a record
//
// an owner can never revoke their own implicit access; removing a
// grant that does not exist succeeds silently
func (reg *registryData) Revoke(caller identity.Identity, sequenceId uint64, target identity.Identity) error {
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

	if target == caller {
		trx.Abort()
		return fault.SelfRevocationNotAllowed
	}

	if r.Locked {
		trx.Abort()
		return fault.RecordIsLocked
	}

	access.Revoke(trx, sequenceId, target)

	err = trx.Commit()
	if nil != err {
		return err
	}

	reg.log.Infof("revoke: id: %d  target: %s", sequenceId, target)

	return nil
}

// Grant - record an access grant for a record
//
// grants only permit verification, never mutation
func (reg *registryData) Grant(caller identity.Identity, sequenceId uint64, target identity.Identity, allowed bool) error {
	reg.Lock()
	defer reg.Unlock()

	if target.IsZero() {
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

	access.Grant(trx, sequenceId, target, allowed)

	err = trx.Commit()
	if nil != err {
		return err
	}

	reg.log.Infof("grant: id: %d  target: %s  allowed: %t", sequenceId, target, allowed)

	return nil
}
