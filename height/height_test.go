// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package height_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/harvestmark-inc/harvestmarkd/height"
	"github.com/harvestmark-inc/harvestmarkd/storage"
)

const (
	databaseFileName = "height-test.leveldb"
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

func TestAdvance(t *testing.T) {
	setup(t)
	defer teardown(t)

	// interval zero: no background ticker
	if err := height.Initialise(storage.Pool.Controls, 0); nil != err {
		t.Fatalf("initialise error: %s", err)
	}

	initial := height.Height()

	for i := uint64(1); i <= 5; i += 1 {
		h := height.Advance()
		if initial+i != h {
			t.Fatalf("advance: %d  expected: %d", h, initial+i)
		}
	}
	if initial+5 != height.Height() {
		t.Fatalf("height: %d  expected: %d", height.Height(), initial+5)
	}

	if err := height.Finalise(); nil != err {
		t.Fatalf("finalise error: %s", err)
	}

	// a restart must never lose height
	if err := height.Initialise(storage.Pool.Controls, 0); nil != err {
		t.Fatalf("re-initialise error: %s", err)
	}
	defer height.Finalise()

	if initial+5 != height.Height() {
		t.Fatalf("height after restart: %d  expected: %d", height.Height(), initial+5)
	}
}
