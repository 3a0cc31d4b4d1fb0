// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package identity - opaque authenticated actor identity
//
// Every ledger operation receives the identity of its caller from the
// calling environment, which is trusted to have authenticated it. Only
// the token is stored and compared; credentials never enter this
// process.
package identity

import (
	"golang.org/x/crypto/sha3"

	"github.com/harvestmark-inc/harvestmarkd/fault"
	"github.com/harvestmark-inc/harvestmarkd/util"
)

// miscellaneous constants
const (
	TokenLength = 32

	checksumLength = 4

	// bits in variant code starting from LSB
	identityCode = 0x01
	spare1Code   = 0x02
	spare2Code   = 0x04
)

// Identity - an authenticated actor token
type Identity struct {
	token [TokenLength]byte
}

// Derive - identity token from public credential material
//
// the token is the SHA3-256 digest of the material so raw credentials
// never need to be retained
func Derive(material []byte) Identity {
	return Identity{
		token: sha3.Sum256(material),
	}
}

// FromBytes - identity from a raw token
func FromBytes(token []byte) (Identity, error) {
	if TokenLength != len(token) {
		return Identity{}, fault.CannotDecodeIdentity
	}
	id := Identity{}
	copy(id.token[:], token)
	return id, nil
}

// FromBase58 - convert a Base58 encoded string to an identity
func FromBase58(text string) (Identity, error) {
	decoded := util.FromBase58(text)
	if 1+TokenLength+checksumLength != len(decoded) {
		return Identity{}, fault.CannotDecodeIdentity
	}

	if identityCode != decoded[0]&identityCode {
		return Identity{}, fault.CannotDecodeIdentity
	}

	digest := sha3.Sum256(decoded[:1+TokenLength])
	expected := decoded[1+TokenLength:]
	for i := 0; i < checksumLength; i += 1 {
		if digest[i] != expected[i] {
			return Identity{}, fault.InvalidIdentityChecksum
		}
	}

	id := Identity{}
	copy(id.token[:], decoded[1:1+TokenLength])
	return id, nil
}

// Bytes - raw token bytes, for use as part of a storage key
func (id Identity) Bytes() []byte {
	buffer := make([]byte, TokenLength)
	copy(buffer, id.token[:])
	return buffer
}

// String - Base58 representation with variant byte and checksum
func (id Identity) String() string {
	buffer := make([]byte, 0, 1+TokenLength+checksumLength)
	buffer = append(buffer, identityCode)
	buffer = append(buffer, id.token[:]...)
	digest := sha3.Sum256(buffer)
	buffer = append(buffer, digest[:checksumLength]...)
	return util.ToBase58(buffer)
}

// IsZero - detect the unset identity
func (id Identity) IsZero() bool {
	zero := [TokenLength]byte{}
	return zero == id.token
}

// MarshalText - for JSON encoding
func (id Identity) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - for JSON decoding
func (id *Identity) UnmarshalText(text []byte) error {
	decoded, err := FromBase58(string(text))
	if nil != err {
		return err
	}
	*id = decoded
	return nil
}
