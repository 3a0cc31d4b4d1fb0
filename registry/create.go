// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/harvestmark-inc/harvestmarkd/access"
	"github.com/harvestmark-inc/harvestmarkd/fault"
	"github.com/harvestmark-inc/harvestmarkd/height"
	"github.com/harvestmark-inc/harvestmarkd/identity"
	"github.com/harvestmark-inc/harvestmarkd/record"
)

// Create - register a new production record owned by the caller
//
// the record is stamped with the ledger height at the time of
// registration and receives the next sequence id; the caller also
// receives an explicit access grant so a later ownership transfer does
// not cut the original cultivator off from verification
func (reg *registryData) Create(caller identity.Identity, produce string, volume uint64, location string, descriptors []string) (uint64, error) {
	reg.Lock()
	defer reg.Unlock()

	r := record.AssetRecord{
		Produce:     produce,
		Cultivator:  caller,
		Volume:      volume,
		Height:      height.Height(),
		Location:    location,
		Descriptors: descriptors,
	}

	// reject before touching the store
	packed, err := r.Pack()
	if nil != err {
		return 0, err
	}

	trx, err := newTransaction()
	if nil != err {
		return 0, err
	}

	sequenceId := reg.allocator.Next(trx)
	key := sequenceKey(sequenceId)
	if trx.Has(reg.records, key) {
		trx.Abort()
		return 0, fault.RecordAlreadyExists
	}

	trx.Put(reg.records, key, packed)
	access.Grant(trx, sequenceId, caller, true)
	reg.allocator.Commit(trx, sequenceId)

	count, _ := trx.GetN(reg.controls, recordCountKey)
	trx.PutN(reg.controls, recordCountKey, count+1)

	err = trx.Commit()
	if nil != err {
		return 0, err
	}

	reg.log.Infof("create: id: %d  produce: %q  cultivator: %s", sequenceId, produce, caller)

	return sequenceId, nil
}
