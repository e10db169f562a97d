// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bulkrecord - write-once bulk ownership chunks
//
// A chunk is a byte-concatenated sequence of owner addresses written
// exactly once at creation time.  The input must be strictly ascending,
// which rejects duplicates in the same linear pass that validates
// ordering and leaves the chunk ready for binary search.  Token ids are
// assigned consecutively from the current high-water mark, so a lookup
// is a single offset read and no per-token record is ever stored.
//
// A chunk is stored either inline in memory or as an externally
// referenced blob in a storage pool; both stores present the same
// interface and the record does not care which is behind it.
package bulkrecord
