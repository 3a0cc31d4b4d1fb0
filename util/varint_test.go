// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"bytes"
	"testing"

	"github.com/harvestmark-inc/harvestmarkd/util"
)

// main varint test
func TestVarint64(t *testing.T) {

	tests := []struct {
		value   uint64
		encoded []byte
	}{
		{0x00, []byte{0x00}},
		{0x01, []byte{0x01}},
		{0x7f, []byte{0x7f}},
		{0x80, []byte{0x80, 0x01}},
		{0xff, []byte{0xff, 0x01}},
		{0x3fff, []byte{0xff, 0x7f}},
		{0x4000, []byte{0x80, 0x80, 0x01}},
		{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}

	for i, item := range tests {
		encoded := util.ToVarint64(item.value)
		if !bytes.Equal(encoded, item.encoded) {
			t.Errorf("%d: encode: %d  got: %x  expected: %x", i, item.value, encoded, item.encoded)
		}

		decoded, count := util.FromVarint64(item.encoded)
		if decoded != item.value {
			t.Errorf("%d: decode: %x  got: %d  expected: %d", i, item.encoded, decoded, item.value)
		}
		if count != len(item.encoded) {
			t.Errorf("%d: decode count: %d  expected: %d", i, count, len(item.encoded))
		}
	}

	// truncated buffer must decode as zero length
	if v, n := util.FromVarint64([]byte{0x80}); 0 != v || 0 != n {
		t.Errorf("truncated: got: %d, %d  expected: 0, 0", v, n)
	}
}
