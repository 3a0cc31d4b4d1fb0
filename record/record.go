// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - the agricultural provenance record
//
// one record describes a single produce batch: what it is, how much of
// it there is, where it came from and how it is classified; the record
// is bound to its current owning cultivator and to the global height at
// which it was registered
package record

import (
	"github.com/harvestmark-inc/harvestmarkd/identity"
)

// TagType - type code prefixed to every packed record
type TagType uint64

// enumerate the possible record types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	AssetRecordTag = TagType(iota)

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// field bounds
const (
	minProduceLength = 1
	maxProduceLength = 64

	minLocationLength = 1
	maxLocationLength = 128

	minVolume   = 1
	volumeLimit = 1000000000 // exclusive

	MinDescriptors = 1
	MaxDescriptors = 10

	minDescriptorLength = 1
	maxDescriptorLength = 32
)

// AssetRecord - the unpacked agricultural record
type AssetRecord struct {
	Produce     string            `json:"produce"`           // utf-8
	Cultivator  identity.Identity `json:"cultivator"`        // base58, current owner
	Volume      uint64            `json:"volume,string"`     // production volume, units of produce
	Height      uint64            `json:"height,string"`     // global height at creation, immutable
	Location    string            `json:"location"`          // utf-8
	Descriptors []string          `json:"descriptors"`       // ordered classification tags
	Locked      bool              `json:"locked"`            // emergency restriction flag
}
