// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package access - per-record access grants
//
// a grant is a boolean keyed by (sequence id, identity) and is distinct
// from ownership: it only permits authenticity verification. A missing
// entry always reads as ungranted, never as an error.
package access

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/harvestmark-inc/harvestmarkd/fault"
	"github.com/harvestmark-inc/harvestmarkd/identity"
	"github.com/harvestmark-inc/harvestmarkd/storage"
)

// grant byte values
const (
	grantDenied  = 0x00
	grantAllowed = 0x01
)

var globalData struct {
	sync.RWMutex
	log  *logger.L
	pool *storage.PoolHandle

	// set once during initialise
	initialised bool
}

// Initialise - attach the access matrix to its pool
func Initialise(pool *storage.PoolHandle) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("access")
	globalData.log.Info("starting…")

	globalData.pool = pool
	globalData.initialised = true

	return nil
}

// Finalise - detach from the pool
func Finalise() error {

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("finished")
	globalData.log.Flush()

	globalData.initialised = false

	return nil
}

// key: 8 byte big endian sequence id ‖ identity token
func matrixKey(sequenceId uint64, who identity.Identity) []byte {
	key := make([]byte, 8, 8+identity.TokenLength)
	binary.BigEndian.PutUint64(key, sequenceId)
	return append(key, who.Bytes()...)
}

// Grant - upsert the grant flag inside a transaction
func Grant(trx storage.Transaction, sequenceId uint64, who identity.Identity, allowed bool) {
	value := []byte{grantDenied}
	if allowed {
		value = []byte{grantAllowed}
	}
	trx.Put(globalData.pool, matrixKey(sequenceId, who), value)
}

// Revoke - delete the grant entry inside a transaction
//
// a no-op if the entry does not exist
func Revoke(trx storage.Transaction, sequenceId uint64, who identity.Identity) {
	trx.Delete(globalData.pool, matrixKey(sequenceId, who))
}

// Permitted - read the grant flag
//
// absence reads as false
func Permitted(sequenceId uint64, who identity.Identity) bool {
	globalData.RLock()
	pool := globalData.pool
	globalData.RUnlock()

	if nil == pool {
		return false
	}

	value := pool.Get(matrixKey(sequenceId, who))
	if nil == value || 0 == len(value) {
		return false
	}
	return grantAllowed == value[0]
}
