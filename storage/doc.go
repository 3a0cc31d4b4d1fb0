// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate prefixed pools of a single LevelDB database:
//
//   Records   R ‖ sequence-id          - packed agricultural records
//   Access    G ‖ sequence-id ‖ token  - access grant flags
//   Controls  N ‖ name                 - sequence counter, height, record count
//   TestData  Z ‖ anything             - reserved for testing
//
// each mutating ledger operation runs inside a single Transaction so
// either all of its writes are committed or none are
package storage
