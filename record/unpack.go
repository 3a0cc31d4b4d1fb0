// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/harvestmark-inc/harvestmarkd/fault"
	"github.com/harvestmark-inc/harvestmarkd/identity"
	"github.com/harvestmark-inc/harvestmarkd/util"
)

// Unpack - deserialise a record from the store
func (packed Packed) Unpack() (*AssetRecord, error) {

	buffer := []byte(packed)

	tag, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, fault.TruncatedRecord
	}
	if AssetRecordTag != TagType(tag) {
		return nil, fault.WrongRecordTag
	}
	buffer = buffer[n:]

	flags, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, fault.TruncatedRecord
	}
	buffer = buffer[n:]

	produce, buffer, err := nextBytes(buffer)
	if nil != err {
		return nil, err
	}

	token, buffer, err := nextBytes(buffer)
	if nil != err {
		return nil, err
	}
	cultivator, err := identity.FromBytes(token)
	if nil != err {
		return nil, err
	}

	volume, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, fault.TruncatedRecord
	}
	buffer = buffer[n:]

	height, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, fault.TruncatedRecord
	}
	buffer = buffer[n:]

	location, buffer, err := nextBytes(buffer)
	if nil != err {
		return nil, err
	}

	count, n := util.FromVarint64(buffer)
	if 0 == n || count > MaxDescriptors {
		return nil, fault.TruncatedRecord
	}
	buffer = buffer[n:]

	descriptors := make([]string, count)
	for i := uint64(0); i < count; i += 1 {
		var descriptor []byte
		descriptor, buffer, err = nextBytes(buffer)
		if nil != err {
			return nil, err
		}
		descriptors[i] = string(descriptor)
	}

	r := &AssetRecord{
		Produce:     string(produce),
		Cultivator:  cultivator,
		Volume:      volume,
		Height:      height,
		Location:    string(location),
		Descriptors: descriptors,
		Locked:      0 != flags&flagLocked,
	}

	// a record that fails its own bounds indicates store corruption
	if err := r.Validate(); nil != err {
		return nil, err
	}

	return r, nil
}

// extract one length-prefixed field
func nextBytes(buffer []byte) ([]byte, []byte, error) {
	length, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, nil, fault.TruncatedRecord
	}
	buffer = buffer[n:]
	if uint64(len(buffer)) < length {
		return nil, nil, fault.TruncatedRecord
	}
	return buffer[:length], buffer[length:], nil
}
