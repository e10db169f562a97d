// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the JSON RPC calls
//
// requests are transported over TLS using JSON encoding, handlers are
// registered per service in rpc/server and served by rpc/listeners
package rpc
