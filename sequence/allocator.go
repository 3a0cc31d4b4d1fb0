// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sequence - monotonic record identifier allocation
//
// identifiers start at 1, increase by exactly 1 and are never reused;
// the new counter value is committed in the same transaction as the
// record that uses it, so a failed insert never consumes an identifier
package sequence

import (
	"github.com/harvestmark-inc/harvestmarkd/storage"
)

// key in the controls pool
var sequenceKey = []byte("sequence")

// Allocator - issues the next unique record identifier
type Allocator struct {
	pool *storage.PoolHandle
}

// New - allocator over a controls pool
func New(pool *storage.PoolHandle) *Allocator {
	return &Allocator{
		pool: pool,
	}
}

// Next - peek the next identifier inside a transaction
//
// nothing is consumed until Commit is called with the returned value
func (a *Allocator) Next(trx storage.Transaction) uint64 {
	current, _ := trx.GetN(a.pool, sequenceKey)
	return current + 1
}

// Commit - stage the counter update into the same transaction as the
// record insert that uses the identifier
func (a *Allocator) Commit(trx storage.Transaction, allocated uint64) {
	trx.PutN(a.pool, sequenceKey, allocated)
}

// Current - last committed identifier, zero if none ever issued
func (a *Allocator) Current() uint64 {
	current, _ := a.pool.GetN(sequenceKey)
	return current
}
