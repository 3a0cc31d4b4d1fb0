// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package provenance_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/harvestmark-inc/harvestmarkd/access"
	"github.com/harvestmark-inc/harvestmarkd/fault"
	"github.com/harvestmark-inc/harvestmarkd/height"
	"github.com/harvestmark-inc/harvestmarkd/identity"
	"github.com/harvestmark-inc/harvestmarkd/registry"
	"github.com/harvestmark-inc/harvestmarkd/rpc/provenance"
	"github.com/harvestmark-inc/harvestmarkd/storage"
)

const (
	databaseFileName = "provenance-rpc-test.leveldb"
	logDirectory     = "testlog"
)

var (
	alice     = identity.Derive([]byte("alice"))
	bob       = identity.Derive([]byte("bob"))
	authority = identity.Derive([]byte("protocol authority"))
)

func removeFiles() {
	os.RemoveAll(databaseFileName)
	os.RemoveAll(logDirectory)
}

func setup(t *testing.T) *provenance.Provenance {
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
	if err := height.Initialise(storage.Pool.Controls, 0); nil != err {
		t.Fatalf("height initialise error: %s", err)
	}
	if err := access.Initialise(storage.Pool.Access); nil != err {
		t.Fatalf("access initialise error: %s", err)
	}
	if err := registry.Initialise(storage.Pool.Records, storage.Pool.Controls, authority); nil != err {
		t.Fatalf("registry initialise error: %s", err)
	}

	return provenance.New(logger.New("testing"), registry.Get())
}

func teardown(t *testing.T) {
	registry.Finalise()
	access.Finalise()
	height.Finalise()
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

func TestVerify(t *testing.T) {
	service := setup(t)
	defer teardown(t)

	sequenceId, err := registry.Get().Create(alice, "Corn", 500, "Farm A", []string{"organic"})
	if nil != err {
		t.Fatalf("create error: %s", err)
	}
	height.Advance()

	var reply provenance.VerifyReply
	err = service.Verify(&provenance.VerifyArguments{
		Caller:             alice,
		SequenceId:         sequenceId,
		ExpectedCultivator: alice,
	}, &reply)
	assert.Nil(t, err, "verify error")
	assert.True(t, reply.Provenance.IsAuthentic, "authentic")
	assert.True(t, reply.Provenance.FarmerMatch, "farmer match")
	assert.Equal(t, uint64(1), reply.Provenance.Age, "age")

	// expectation mismatch is an answer, not an error
	err = service.Verify(&provenance.VerifyArguments{
		Caller:             alice,
		SequenceId:         sequenceId,
		ExpectedCultivator: bob,
	}, &reply)
	assert.Nil(t, err, "verify error")
	assert.False(t, reply.Provenance.IsAuthentic, "mismatch reported authentic")

	// a stranger is refused
	err = service.Verify(&provenance.VerifyArguments{
		Caller:             bob,
		SequenceId:         sequenceId,
		ExpectedCultivator: alice,
	}, &reply)
	assert.Equal(t, fault.PermissionDenied, err, "stranger verify")
	assert.Equal(t, fault.CodePermissionDenied, fault.Code(err), "protocol code")

	// missing records are reported before permission
	err = service.Verify(&provenance.VerifyArguments{
		Caller:             bob,
		SequenceId:         42,
		ExpectedCultivator: alice,
	}, &reply)
	assert.Equal(t, fault.RecordNotFound, err, "missing record")
}
