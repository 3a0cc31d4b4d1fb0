// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harvestmark-inc/harvestmarkd/fault"
	"github.com/harvestmark-inc/harvestmarkd/identity"
)

func TestRoundTrip(t *testing.T) {
	alice := identity.Derive([]byte("alice public credential"))

	text := alice.String()
	assert.NotEqual(t, "", text, "empty base58 representation")

	decoded, err := identity.FromBase58(text)
	assert.Equal(t, nil, err, "decode error")
	assert.Equal(t, alice, decoded, "round trip mismatch")
}

func TestDeriveIsStable(t *testing.T) {
	one := identity.Derive([]byte("cultivator"))
	two := identity.Derive([]byte("cultivator"))
	other := identity.Derive([]byte("somebody else"))

	assert.Equal(t, one, two, "same material must derive same identity")
	assert.NotEqual(t, one, other, "different material must derive different identity")
}

func TestRejectCorruptText(t *testing.T) {
	alice := identity.Derive([]byte("alice"))
	text := alice.String()

	// flip one character, avoiding an identical replacement
	corrupt := []byte(text)
	if 'x' == corrupt[len(corrupt)-1] {
		corrupt[len(corrupt)-1] = 'y'
	} else {
		corrupt[len(corrupt)-1] = 'x'
	}

	_, err := identity.FromBase58(string(corrupt))
	assert.NotEqual(t, nil, err, "corrupt text must not decode")

	_, err = identity.FromBase58("")
	assert.Equal(t, fault.CannotDecodeIdentity, err, "empty text")

	_, err = identity.FromBytes([]byte{1, 2, 3})
	assert.Equal(t, fault.CannotDecodeIdentity, err, "short token")
}

func TestJSON(t *testing.T) {
	type wrapper struct {
		Who identity.Identity `json:"who"`
	}

	in := wrapper{Who: identity.Derive([]byte("json test"))}
	buffer, err := json.Marshal(in)
	assert.Equal(t, nil, err, "marshal error")

	out := wrapper{}
	err = json.Unmarshal(buffer, &out)
	assert.Equal(t, nil, err, "unmarshal error")
	assert.Equal(t, in.Who, out.Who, "json round trip mismatch")
}

func TestIsZero(t *testing.T) {
	zero := identity.Identity{}
	assert.True(t, zero.IsZero(), "zero identity not detected")
	assert.False(t, identity.Derive([]byte("a")).IsZero(), "derived identity reported zero")
}
