// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"bytes"
	"testing"

	"github.com/harvestmark-inc/harvestmarkd/storage"
)

// main pool test
func TestPool(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	if p.Has([]byte("key-one")) {
		t.Fatalf("pool was not empty")
	}

	p.Put([]byte("key-one"), []byte("data-one"))
	p.Put([]byte("key-two"), []byte("data-two"))
	p.Put([]byte("key-remove-me"), []byte("to be deleted"))
	p.Delete([]byte("key-remove-me"))
	p.Put([]byte("key-one"), []byte("data-one(NEW)")) // duplicate

	// check presence
	if !p.Has([]byte("key-one")) {
		t.Errorf("missing: %q", "key-one")
	}
	if p.Has([]byte("key-remove-me")) {
		t.Errorf("not deleted: %q", "key-remove-me")
	}
	if p.Has([]byte("/nonexistent")) {
		t.Errorf("unexpected key: %q", "/nonexistent")
	}

	// check overwrite
	if data := p.Get([]byte("key-one")); !bytes.Equal([]byte("data-one(NEW)"), data) {
		t.Errorf("get: %q  expected: %q", data, "data-one(NEW)")
	}

	// deleted key reads as nil
	if data := p.Get([]byte("key-remove-me")); nil != data {
		t.Errorf("get deleted: %q  expected: nil", data)
	}

	// highest key
	element, found := p.LastElement()
	if !found {
		t.Fatalf("no last element")
	}
	if !bytes.Equal([]byte("key-two"), element.Key) {
		t.Errorf("last element key: %q  expected: %q", element.Key, "key-two")
	}

	// check that restarting database keeps data
	storage.Finalise()
	if err := storage.Initialise(databaseFileName); nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	p = storage.Pool.TestData
	if data := p.Get([]byte("key-one")); !bytes.Equal([]byte("data-one(NEW)"), data) {
		t.Errorf("get after restart: %q  expected: %q", data, "data-one(NEW)")
	}
}

// numeric put/get
func TestPoolN(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	if _, found := p.GetN([]byte("counter")); found {
		t.Fatalf("counter already present")
	}

	p.PutN([]byte("counter"), 42)

	n, found := p.GetN([]byte("counter"))
	if !found {
		t.Fatalf("counter not stored")
	}
	if 42 != n {
		t.Errorf("counter: %d  expected: %d", n, 42)
	}
}
