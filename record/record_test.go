// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harvestmark-inc/harvestmarkd/fault"
	"github.com/harvestmark-inc/harvestmarkd/identity"
	"github.com/harvestmark-inc/harvestmarkd/record"
)

var cultivator = identity.Derive([]byte("test cultivator"))

func validRecord() record.AssetRecord {
	return record.AssetRecord{
		Produce:     "Corn",
		Cultivator:  cultivator,
		Volume:      500,
		Height:      12,
		Location:    "Farm A",
		Descriptors: []string{"organic"},
	}
}

func TestValidate(t *testing.T) {

	tests := []struct {
		name   string
		modify func(*record.AssetRecord)
		err    error
	}{
		{"valid", func(r *record.AssetRecord) {}, nil},
		{"empty produce", func(r *record.AssetRecord) { r.Produce = "" }, fault.ProduceNameTooShort},
		{"produce too long", func(r *record.AssetRecord) { r.Produce = strings.Repeat("x", 65) }, fault.ProduceNameTooLong},
		{"produce at limit", func(r *record.AssetRecord) { r.Produce = strings.Repeat("x", 64) }, nil},
		{"zero volume", func(r *record.AssetRecord) { r.Volume = 0 }, fault.VolumeOutOfRange},
		{"volume at limit", func(r *record.AssetRecord) { r.Volume = 1000000000 }, fault.VolumeOutOfRange},
		{"volume below limit", func(r *record.AssetRecord) { r.Volume = 999999999 }, nil},
		{"empty location", func(r *record.AssetRecord) { r.Location = "" }, fault.LocationTooShort},
		{"location too long", func(r *record.AssetRecord) { r.Location = strings.Repeat("x", 129) }, fault.LocationTooLong},
		{"location at limit", func(r *record.AssetRecord) { r.Location = strings.Repeat("x", 128) }, nil},
		{"no descriptors", func(r *record.AssetRecord) { r.Descriptors = []string{} }, fault.DescriptorCountOutOfRange},
		{"eleven descriptors", func(r *record.AssetRecord) {
			r.Descriptors = make([]string, 11)
			for i := range r.Descriptors {
				r.Descriptors[i] = "tag"
			}
		}, fault.DescriptorCountOutOfRange},
		{"empty descriptor", func(r *record.AssetRecord) { r.Descriptors = []string{""} }, fault.DescriptorTooShort},
		{"descriptor too long", func(r *record.AssetRecord) { r.Descriptors = []string{strings.Repeat("x", 33)} }, fault.DescriptorTooLong},
		{"descriptor at limit", func(r *record.AssetRecord) { r.Descriptors = []string{strings.Repeat("x", 32)} }, nil},
		{"zero cultivator", func(r *record.AssetRecord) { r.Cultivator = identity.Identity{} }, fault.MissingParameters},
	}

	for _, item := range tests {
		r := validRecord()
		item.modify(&r)
		err := r.Validate()
		assert.Equal(t, item.err, err, item.name)
	}
}

func TestDescriptorChecks(t *testing.T) {
	assert.True(t, record.IsValidDescriptor("organic"), "plain tag")
	assert.False(t, record.IsValidDescriptor(""), "empty tag")
	assert.False(t, record.IsValidDescriptor(strings.Repeat("x", 33)), "long tag")

	assert.True(t, record.IsValidDescriptorSet([]string{"organic", "fair-trade"}), "plain set")
	assert.False(t, record.IsValidDescriptorSet([]string{}), "empty set")
	assert.False(t, record.IsValidDescriptorSet([]string{"ok", ""}), "set with empty tag")
}

func TestPackUnpack(t *testing.T) {
	r := validRecord()
	r.Descriptors = []string{"organic", "heirloom", "non-gmo"}
	r.Locked = true

	packed, err := r.Pack()
	assert.Equal(t, nil, err, "pack error")

	unpacked, err := packed.Unpack()
	assert.Equal(t, nil, err, "unpack error")
	assert.Equal(t, &r, unpacked, "round trip mismatch")
}

func TestPackRejectsInvalid(t *testing.T) {
	r := validRecord()
	r.Volume = 0

	_, err := r.Pack()
	assert.Equal(t, fault.VolumeOutOfRange, err, "pack accepted invalid record")
}

func TestUnpackRejectsGarbage(t *testing.T) {
	_, err := record.Packed{}.Unpack()
	assert.Equal(t, fault.TruncatedRecord, err, "empty buffer")

	_, err = record.Packed{0x7f, 0x01}.Unpack()
	assert.Equal(t, fault.WrongRecordTag, err, "wrong tag")

	// valid tag then nothing
	_, err = record.Packed{0x01}.Unpack()
	assert.Equal(t, fault.TruncatedRecord, err, "tag only")
}
