// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/harvestmark-inc/harvestmarkd/access"
	"github.com/harvestmark-inc/harvestmarkd/fault"
	"github.com/harvestmark-inc/harvestmarkd/height"
	"github.com/harvestmark-inc/harvestmarkd/identity"
	"github.com/harvestmark-inc/harvestmarkd/mode"
	"github.com/harvestmark-inc/harvestmarkd/registry"
	"github.com/harvestmark-inc/harvestmarkd/rpc/record"
	"github.com/harvestmark-inc/harvestmarkd/storage"
)

const (
	databaseFileName = "record-rpc-test.leveldb"
	logDirectory     = "testlog"
)

var (
	alice     = identity.Derive([]byte("alice"))
	authority = identity.Derive([]byte("protocol authority"))
)

func removeFiles() {
	os.RemoveAll(databaseFileName)
	os.RemoveAll(logDirectory)
}

func setup(t *testing.T) *record.Record {
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

	_ = mode.Initialise()
	mode.Set(mode.Normal)

	if err := storage.Initialise(databaseFileName); nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	if err := height.Initialise(storage.Pool.Controls, 0); nil != err {
		t.Fatalf("height initialise error: %s", err)
	}
	if err := access.Initialise(storage.Pool.Access); nil != err {
		t.Fatalf("access initialise error: %s", err)
	}
	if err := registry.Initialise(storage.Pool.Records, storage.Pool.Controls, authority); nil != err {
		t.Fatalf("registry initialise error: %s", err)
	}

	return record.New(logger.New("testing"), mode.Is, registry.Get())
}

func teardown(t *testing.T) {
	registry.Finalise()
	access.Finalise()
	height.Finalise()
	storage.Finalise()
	mode.Finalise()
	logger.Finalise()
	removeFiles()
}

func TestCreate(t *testing.T) {
	service := setup(t)
	defer teardown(t)

	arguments := record.CreateArguments{
		Caller:      alice,
		Produce:     "Corn",
		Volume:      500,
		Location:    "Farm A",
		Descriptors: []string{"organic"},
	}

	var reply record.CreateReply
	err := service.Create(&arguments, &reply)
	assert.Nil(t, err, "create error")
	assert.Equal(t, uint64(1), reply.SequenceId, "sequence id")

	// field errors pass through unchanged
	arguments.Volume = 0
	err = service.Create(&arguments, &reply)
	assert.Equal(t, fault.VolumeOutOfRange, err, "invalid volume")
	assert.Equal(t, fault.CodeNumericRangeViolation, fault.Code(err), "protocol code")
}

func TestCreateRefusedDuringResynchronise(t *testing.T) {
	service := setup(t)
	defer teardown(t)

	mode.Set(mode.Resynchronise)

	arguments := record.CreateArguments{
		Caller:      alice,
		Produce:     "Corn",
		Volume:      500,
		Location:    "Farm A",
		Descriptors: []string{"organic"},
	}

	var reply record.CreateReply
	err := service.Create(&arguments, &reply)
	assert.Equal(t, fault.NotAvailableDuringSynchronise, err, "create during resynchronise")
}

func TestModifyAppendPurge(t *testing.T) {
	service := setup(t)
	defer teardown(t)

	createArguments := record.CreateArguments{
		Caller:      alice,
		Produce:     "Corn",
		Volume:      500,
		Location:    "Farm A",
		Descriptors: []string{"organic"},
	}
	var created record.CreateReply
	if err := service.Create(&createArguments, &created); nil != err {
		t.Fatalf("create error: %s", err)
	}

	var modified record.ModifyReply
	err := service.Modify(&record.ModifyArguments{
		Caller:      alice,
		SequenceId:  created.SequenceId,
		Produce:     "Sweet Corn",
		Volume:      600,
		Location:    "Farm A",
		Descriptors: []string{"organic"},
	}, &modified)
	assert.Nil(t, err, "modify error")
	assert.True(t, modified.Modified, "modify flag")

	var appended record.AppendReply
	err = service.Append(&record.AppendArguments{
		Caller:      alice,
		SequenceId:  created.SequenceId,
		Descriptors: []string{"non-gmo"},
	}, &appended)
	assert.Nil(t, err, "append error")
	assert.Equal(t, []string{"organic", "non-gmo"}, appended.Descriptors, "merged descriptors")

	var purged record.PurgeReply
	err = service.Purge(&record.PurgeArguments{
		Caller:     alice,
		SequenceId: created.SequenceId,
	}, &purged)
	assert.Nil(t, err, "purge error")

	err = service.Purge(&record.PurgeArguments{
		Caller:     alice,
		SequenceId: created.SequenceId,
	}, &purged)
	assert.Equal(t, fault.RecordNotFound, err, "double purge")
}

func TestRestrict(t *testing.T) {
	service := setup(t)
	defer teardown(t)

	createArguments := record.CreateArguments{
		Caller:      alice,
		Produce:     "Corn",
		Volume:      500,
		Location:    "Farm A",
		Descriptors: []string{"organic"},
	}
	var created record.CreateReply
	if err := service.Create(&createArguments, &created); nil != err {
		t.Fatalf("create error: %s", err)
	}

	var restricted record.RestrictReply
	err := service.Restrict(&record.RestrictArguments{
		Caller:     authority,
		SequenceId: created.SequenceId,
	}, &restricted)
	assert.Nil(t, err, "restrict error")
	assert.True(t, restricted.Restricted, "restrict flag")

	var modified record.ModifyReply
	err = service.Modify(&record.ModifyArguments{
		Caller:      alice,
		SequenceId:  created.SequenceId,
		Produce:     "Corn",
		Volume:      500,
		Location:    "Farm A",
		Descriptors: []string{"organic"},
	}, &modified)
	assert.Equal(t, fault.RecordIsLocked, err, "locked modify")
	assert.Equal(t, fault.CodeAccessForbidden, fault.Code(err), "protocol code")
}
