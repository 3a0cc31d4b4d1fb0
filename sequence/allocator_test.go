// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sequence_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/harvestmark-inc/harvestmarkd/sequence"
	"github.com/harvestmark-inc/harvestmarkd/storage"
)

const (
	databaseFileName = "sequence-test.leveldb"
	logDirectory     = "testlog"
)

func removeFiles() {
	os.RemoveAll(databaseFileName)
	os.RemoveAll(logDirectory)
}

func setup(t *testing.T) {
	removeFiles()

	_ = os.Mkdir(logDirectory, 0700)
	_ = logger.Initialise(logger.Configuration{
		Directory: logDirectory,
		File:      "test.log",
		Size:      1048576,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})

	if err := storage.Initialise(databaseFileName); nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

func teardown(t *testing.T) {
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

func TestAllocation(t *testing.T) {
	setup(t)
	defer teardown(t)

	a := sequence.New(storage.Pool.Controls)

	if 0 != a.Current() {
		t.Fatalf("fresh allocator current: %d  expected: 0", a.Current())
	}

	// identifiers are 1, 2, 3, … committed one per transaction
	for expected := uint64(1); expected <= 3; expected += 1 {
		trx, err := storage.NewDBTransaction()
		if nil != err {
			t.Fatalf("begin error: %s", err)
		}

		n := a.Next(trx)
		if expected != n {
			t.Fatalf("next: %d  expected: %d", n, expected)
		}

		a.Commit(trx, n)
		if err := trx.Commit(); nil != err {
			t.Fatalf("commit error: %s", err)
		}

		if expected != a.Current() {
			t.Fatalf("current: %d  expected: %d", a.Current(), expected)
		}
	}
}

func TestAbortDoesNotConsume(t *testing.T) {
	setup(t)
	defer teardown(t)

	a := sequence.New(storage.Pool.Controls)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}

	n := a.Next(trx)
	a.Commit(trx, n)
	trx.Abort()

	if 0 != a.Current() {
		t.Fatalf("aborted allocation consumed identifier: %d", a.Current())
	}

	// the same identifier is issued again
	trx, err = storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	defer trx.Abort()

	if again := a.Next(trx); n != again {
		t.Fatalf("next after abort: %d  expected: %d", again, n)
	}
}
