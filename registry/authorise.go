// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/harvestmark-inc/harvestmarkd/access"
	"github.com/harvestmark-inc/harvestmarkd/identity"
	"github.com/harvestmark-inc/harvestmarkd/record"
)

// operation classes for the permission lattice
type operation int

const (
	opVerify operation = iota
	opTransfer
	opRevoke
	opAppend
	opModify
	opPurge
	opRestrict
)

// canAct - the single permission check shared by every operation
//
// the record owner may perform any operation; a grantee only
// verification; the protocol authority verification and emergency
// restriction
func canAct(op operation, r *record.AssetRecord, caller identity.Identity, sequenceId uint64) bool {

	if r.Cultivator == caller {
		return true
	}

	switch op {
	case opVerify:
		if caller == globalData.authority {
			return true
		}
		return access.Permitted(sequenceId, caller)

	case opRestrict:
		return caller == globalData.authority

	default:
		return false
	}
}
