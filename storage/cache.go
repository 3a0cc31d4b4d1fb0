// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Cache - read-through cache in front of the database
type Cache interface {
	Get(string) ([]byte, bool)
	Set(int, string, []byte)
	Clear()
}

// cached operation markers
const (
	dbPut = iota
	dbDelete
)

const (
	defaultCleanup    = 1 * time.Minute
	defaultExpiration = 2 * time.Minute
)

type dbCache struct {
	cache *cache.Cache
}

type cacheEntry struct {
	op    int
	value []byte
}

func newCache() Cache {
	return &dbCache{
		cache: cache.New(defaultExpiration, defaultCleanup),
	}
}

func (c *dbCache) Get(key string) ([]byte, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return []byte{}, false
	}

	entry := obj.(cacheEntry)
	// a deleted key reads as not found
	if dbDelete == entry.op {
		return []byte{}, false
	}

	return entry.value, true
}

func (c *dbCache) Set(op int, key string, value []byte) {
	entry := cacheEntry{
		op:    op,
		value: value,
	}
	c.cache.Set(key, entry, defaultExpiration)
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}
