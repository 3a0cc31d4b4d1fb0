// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - the ledger operations
//
// every public action receives the authenticated identity of its caller
// from the surrounding environment, checks record existence before any
// ownership or permission rule, and then runs all of its store writes
// inside one storage transaction; a failed precondition therefore never
// leaves partial state behind.
//
// permission lattice, consulted uniformly through canAct:
//
//   owner     - every operation on the record
//   grantee   - authenticity verification only
//   authority - authenticity verification and emergency restriction
package registry
