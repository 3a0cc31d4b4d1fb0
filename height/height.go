// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package height - the global height counter
//
// a monotonically increasing value supplied by the environment and used
// by the ledger only as a creation timestamp; it is persisted so that a
// restart can never make it go backwards
package height

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/harvestmark-inc/harvestmarkd/background"
	"github.com/harvestmark-inc/harvestmarkd/fault"
	"github.com/harvestmark-inc/harvestmarkd/storage"
)

// key in the controls pool
var heightKey = []byte("height")

// globals for height
type heightData struct {
	sync.RWMutex // to allow locking

	log *logger.L

	pool   storage.Handle
	height uint64

	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData heightData

// Initialise - load the persisted height and start the ticker
//
// a zero interval disables the ticker; Advance must then be called
// explicitly (used by tests)
func Initialise(pool storage.Handle, interval time.Duration) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("height")
	globalData.log = log
	log.Info("starting…")

	globalData.pool = pool
	globalData.height, _ = pool.GetN(heightKey)

	log.Infof("current height: %d", globalData.height)

	if interval > 0 {
		processes := background.Processes{
			&ticker{interval: interval},
		}
		globalData.background = background.Start(processes, log)
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop the ticker
func Finalise() error {

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.background.Stop()
	globalData.background = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// Height - return current height
func Height() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.height
}

// Advance - increment and persist the height
func Advance() uint64 {
	globalData.Lock()
	defer globalData.Unlock()

	globalData.height += 1
	globalData.pool.PutN(heightKey, globalData.height)
	return globalData.height
}
