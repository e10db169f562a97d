// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/mintmark-io/mintmarkd/counter"
	ed "github.com/mintmark-io/mintmarkd/edition"
	"github.com/mintmark-io/mintmarkd/rpc/edition"
	"github.com/mintmark-io/mintmarkd/rpc/node"
	"github.com/mintmark-io/mintmarkd/rpc/owner"
)

// Create - register all RPC handlers on a new server
func Create(log *logger.L, version string, rpcCount *counter.Counter, e ed.Edition) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(owner.New(log, e))
	_ = server.Register(edition.New(log, e))
	_ = server.Register(node.New(log, e, start, version, rpcCount))

	return server
}
