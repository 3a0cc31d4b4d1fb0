// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/harvestmark-inc/harvestmarkd/fault"
	"github.com/harvestmark-inc/harvestmarkd/identity"
	"github.com/harvestmark-inc/harvestmarkd/record"
	"github.com/harvestmark-inc/harvestmarkd/sequence"
	"github.com/harvestmark-inc/harvestmarkd/storage"
)

// Registry - the public operation surface
type Registry interface {
	Create(caller identity.Identity, produce string, volume uint64, location string, descriptors []string) (uint64, error)
	Verify(caller identity.Identity, sequenceId uint64, expectedCultivator identity.Identity) (*Provenance, error)
	Transfer(caller identity.Identity, sequenceId uint64, recipient identity.Identity) error
	Grant(caller identity.Identity, sequenceId uint64, target identity.Identity, allowed bool) error
	Revoke(caller identity.Identity, sequenceId uint64, target identity.Identity) error
	Append(caller identity.Identity, sequenceId uint64, descriptors []string) ([]string, error)
	Modify(caller identity.Identity, sequenceId uint64, produce string, volume uint64, location string, descriptors []string) error
	Purge(caller identity.Identity, sequenceId uint64) error
	Restrict(caller identity.Identity, sequenceId uint64) error
	Fetch(sequenceId uint64) (*record.AssetRecord, error)
	RecordCount() uint64
}

// key in the controls pool
var recordCountKey = []byte("records")

// globals
type registryData struct {
	sync.Mutex // the single global serialization point for all operations

	log *logger.L

	records   *storage.PoolHandle
	controls  *storage.PoolHandle
	allocator *sequence.Allocator
	authority identity.Identity

	// set once during initialise
	initialised bool
}

// global data
var globalData registryData

// Initialise - attach the registry to its pools
//
// the protocol authority is fixed here for the life of the process
func Initialise(records *storage.PoolHandle, controls *storage.PoolHandle, authority identity.Identity) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("registry")
	globalData.log = log
	log.Info("starting…")

	globalData.records = records
	globalData.controls = controls
	globalData.allocator = sequence.New(controls)
	globalData.authority = authority

	// the committed counter can never be behind the highest stored
	// record or a future create would collide
	if element, found := records.LastElement(); found {
		highest := binary.BigEndian.Uint64(element.Key)
		if globalData.allocator.Current() < highest {
			log.Criticalf("sequence counter: %d behind highest record: %d", globalData.allocator.Current(), highest)
			return fault.DataInconsistent
		}
	}

	log.Infof("authority: %s", authority)
	log.Infof("last issued identifier: %d", globalData.allocator.Current())

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - detach from the pools
func Finalise() error {

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// finally...
	globalData.initialised = false

	return nil
}

// Get - return the operation surface
func Get() Registry {
	return &globalData
}

// begin the single staged store transaction
func newTransaction() (storage.Transaction, error) {
	return storage.NewDBTransaction()
}

// key for one record: 8 byte big endian sequence id
func sequenceKey(sequenceId uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, sequenceId)
	return key
}

// read and unpack one record inside a transaction
func fetchRecord(trx storage.Transaction, sequenceId uint64) (*record.AssetRecord, error) {
	packed := trx.Get(globalData.records, sequenceKey(sequenceId))
	if nil == packed {
		return nil, fault.RecordNotFound
	}
	return record.Packed(packed).Unpack()
}

// pack and stage one record inside a transaction
func storeRecord(trx storage.Transaction, sequenceId uint64, r *record.AssetRecord) error {
	packed, err := r.Pack()
	if nil != err {
		return err
	}
	trx.Put(globalData.records, sequenceKey(sequenceId), packed)
	return nil
}

// Fetch - direct point lookup by sequence id
func (reg *registryData) Fetch(sequenceId uint64) (*record.AssetRecord, error) {
	packed := reg.records.Get(sequenceKey(sequenceId))
	if nil == packed {
		return nil, fault.RecordNotFound
	}
	return record.Packed(packed).Unpack()
}

// RecordCount - number of live records
func (reg *registryData) RecordCount() uint64 {
	count, _ := reg.controls.GetN(recordCountKey)
	return count
}
