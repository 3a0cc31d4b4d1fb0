// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/harvestmark-inc/harvestmarkd/fault"
)

// Transaction - batched writes over the pools
//
// reads see the transaction's own staged writes; nothing reaches the
// database until Commit, and Abort discards every staged write
type Transaction interface {
	Begin() error
	Put(p *PoolHandle, key []byte, value []byte)
	PutN(p *PoolHandle, key []byte, value uint64)
	Delete(p *PoolHandle, key []byte)
	Get(p *PoolHandle, key []byte) []byte
	GetN(p *PoolHandle, key []byte) (uint64, bool)
	Has(p *PoolHandle, key []byte) bool
	Commit() error
	Abort()
}

// staged value: nil slice marks a pending delete
type transactionImpl struct {
	sync.Mutex
	inUse    bool
	database *leveldb.DB
	cache    Cache
	batch    *leveldb.Batch
	staged   map[string][]byte
}

func newTransaction(database *leveldb.DB, cache Cache) Transaction {
	return &transactionImpl{
		database: database,
		cache:    cache,
		batch:    new(leveldb.Batch),
		staged:   make(map[string][]byte),
	}
}

// Begin - mark the transaction in use
//
// only one transaction can be active at a time
func (t *transactionImpl) Begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.TransactionInUse
	}
	t.inUse = true
	return nil
}

func (t *transactionImpl) Put(p *PoolHandle, key []byte, value []byte) {
	prefixedKey := p.prefixKey(key)
	staged := make([]byte, len(value))
	copy(staged, value)
	t.batch.Put(prefixedKey, staged)
	t.staged[string(prefixedKey)] = staged
}

func (t *transactionImpl) PutN(p *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.Put(p, key, buffer)
}

func (t *transactionImpl) Delete(p *PoolHandle, key []byte) {
	prefixedKey := p.prefixKey(key)
	t.batch.Delete(prefixedKey)
	t.staged[string(prefixedKey)] = nil
}

func (t *transactionImpl) Get(p *PoolHandle, key []byte) []byte {
	prefixedKey := p.prefixKey(key)
	if staged, ok := t.staged[string(prefixedKey)]; ok {
		return staged // nil if deleted in this transaction
	}
	return p.Get(key)
}

func (t *transactionImpl) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	prefixedKey := p.prefixKey(key)
	if staged, ok := t.staged[string(prefixedKey)]; ok {
		if len(staged) < 8 {
			return 0, false
		}
		return binary.BigEndian.Uint64(staged[:8]), true
	}
	return p.GetN(key)
}

func (t *transactionImpl) Has(p *PoolHandle, key []byte) bool {
	prefixedKey := p.prefixKey(key)
	if staged, ok := t.staged[string(prefixedKey)]; ok {
		return nil != staged
	}
	return p.Has(key)
}

// Commit - write all staged changes to the database
func (t *transactionImpl) Commit() error {
	t.Lock()
	defer t.Unlock()

	err := t.database.Write(t.batch, nil)
	if nil == err {
		// reflect committed values into the cache
		for key, value := range t.staged {
			if nil == value {
				t.cache.Set(dbDelete, key, nil)
			} else {
				t.cache.Set(dbPut, key, value)
			}
		}
	}
	t.reset()
	return err
}

// Abort - discard all staged changes
func (t *transactionImpl) Abort() {
	t.Lock()
	defer t.Unlock()
	t.reset()
}

// internal: must hold lock
func (t *transactionImpl) reset() {
	t.batch.Reset()
	t.staged = make(map[string][]byte)
	t.inUse = false
}
