// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/harvestmark-inc/harvestmarkd/fault"
	"github.com/harvestmark-inc/harvestmarkd/identity"
	"github.com/harvestmark-inc/harvestmarkd/record"
)

// Append - add supplementary descriptors to a record
//
// the merged set must stay inside the per-record limit; on any failure
// the stored record is untouched. The merged descriptor list is
// returned on success.
func (reg *registryData) Append(caller identity.Identity, sequenceId uint64, descriptors []string) ([]string, error) {
	reg.Lock()
	defer reg.Unlock()

	err := record.CheckDescriptors(descriptors)
	if nil != err {
		return nil, err
	}

	trx, err := newTransaction()
	if nil != err {
		return nil, err
	}

	r, err := fetchRecord(trx, sequenceId)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	if r.Cultivator != caller {
		trx.Abort()
		return nil, fault.OwnershipMismatch
	}

	if r.Locked {
		trx.Abort()
		return nil, fault.RecordIsLocked
	}

	merged := make([]string, 0, len(r.Descriptors)+len(descriptors))
	merged = append(merged, r.Descriptors...)
	merged = append(merged, descriptors...)
	if len(merged) > record.MaxDescriptors {
		trx.Abort()
		return nil, fault.DescriptorCountOutOfRange
	}

	r.Descriptors = merged
	err = storeRecord(trx, sequenceId, r)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	err = trx.Commit()
	if nil != err {
		return nil, err
	}

	reg.log.Infof("append: id: %d  descriptors: %d", sequenceId, len(merged))

	return merged, nil
}
