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

func TestTransactionCommit(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}

	// only one transaction at a time
	if _, err := storage.NewDBTransaction(); nil == err {
		t.Fatalf("second begin did not fail")
	}

	trx.Put(p, []byte("key-one"), []byte("data-one"))
	trx.PutN(p, []byte("counter"), 7)

	// staged writes visible inside the transaction
	if data := trx.Get(p, []byte("key-one")); !bytes.Equal([]byte("data-one"), data) {
		t.Errorf("staged get: %q  expected: %q", data, "data-one")
	}
	if !trx.Has(p, []byte("key-one")) {
		t.Errorf("staged has failed")
	}

	// but not outside until commit
	if p.Has([]byte("key-one")) {
		t.Errorf("uncommitted write is visible")
	}

	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}

	if data := p.Get([]byte("key-one")); !bytes.Equal([]byte("data-one"), data) {
		t.Errorf("committed get: %q  expected: %q", data, "data-one")
	}
	if n, found := p.GetN([]byte("counter")); !found || 7 != n {
		t.Errorf("committed counter: %d, %v  expected: 7, true", n, found)
	}
}

func TestTransactionAbort(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	p.Put([]byte("keep"), []byte("original"))

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}

	trx.Put(p, []byte("keep"), []byte("changed"))
	trx.Delete(p, []byte("keep"))
	trx.Put(p, []byte("extra"), []byte("data"))

	// staged delete reads as gone inside the transaction
	if trx.Has(p, []byte("keep")) {
		t.Errorf("staged delete still visible")
	}

	trx.Abort()

	// nothing committed
	if data := p.Get([]byte("keep")); !bytes.Equal([]byte("original"), data) {
		t.Errorf("after abort: %q  expected: %q", data, "original")
	}
	if p.Has([]byte("extra")) {
		t.Errorf("aborted write is visible")
	}

	// transaction usable again after abort
	trx, err = storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin after abort error: %s", err)
	}
	trx.Abort()
}
