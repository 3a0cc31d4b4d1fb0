// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/harvestmark-inc/harvestmarkd/util"
)

// record flag bits
const (
	flagLocked = 0x01
)

// Pack - serialise a record for the store
//
// Pack Varint64(tag) followed by flags then fields in struct order;
// every field is validated so an out-of-bounds record can never be
// written to the store
func (record *AssetRecord) Pack() (Packed, error) {

	if err := record.Validate(); nil != err {
		return nil, err
	}

	flags := uint64(0)
	if record.Locked {
		flags |= flagLocked
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(AssetRecordTag))
	message = appendUint64(message, flags)
	message = appendString(message, record.Produce)
	message = appendBytes(message, record.Cultivator.Bytes())
	message = appendUint64(message, record.Volume)
	message = appendUint64(message, record.Height)
	message = appendString(message, record.Location)
	message = appendUint64(message, uint64(len(record.Descriptors)))
	for _, descriptor := range record.Descriptors {
		message = appendString(message, descriptor)
	}

	return message, nil
}

// append a single field to a buffer
//
// the field is prefixed by its length
func appendString(buffer []byte, s string) []byte {
	return appendBytes(buffer, []byte(s))
}

func appendBytes(buffer []byte, data []byte) []byte {
	buffer = append(buffer, util.ToVarint64(uint64(len(data)))...)
	buffer = append(buffer, data...)
	return buffer
}

func appendUint64(buffer []byte, value uint64) []byte {
	return append(buffer, util.ToVarint64(value)...)
}
