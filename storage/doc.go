// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintains a single LevelDB database with a number of prefixed pools:
//
// Bulk record:
//
//   C ⧺ chunk number     - packed chunk of ascending owner addresses
//                          data: first id ⧺ address ⧺ address …
//
// Ownership overlay:
//
//   O ⧺ token id         - current owner when it differs from the bulk record
//                          data: address
//   B ⧺ owner            - signed balance adjustment relative to bulk membership
//                          data: int64 (big endian, two's complement)
//   A ⧺ token id         - single token approval
//                          data: address
//
// Mint gate:
//
//   W ⧺ edition name     - packed counter word
//                          data: issued ⧺ capacity ⧺ deadline ⧺ price
//
// Testing:
//
//   Z ⧺ key              - test data
package storage
