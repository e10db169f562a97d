// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/mintmark-io/mintmarkd/counter"
	"github.com/mintmark-io/mintmarkd/edition"
	"github.com/mintmark-io/mintmarkd/mode"
	"github.com/mintmark-io/mintmarkd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Edition edition.Edition
	counter *counter.Counter
}

func New(log *logger.L, e edition.Edition, start time.Time, version string, counter *counter.Counter) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Edition: e,
		counter: counter,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Edition  string `json:"edition"`
	Mode     string `json:"mode"`
	Issued   uint64 `json:"issued,string"`
	Capacity uint64 `json:"capacity,string"`
	RPCs     uint64 `json:"rpcs"`
	Version  string `json:"version"`
	Uptime   string `json:"uptime"`
}

// Info - return some information about this node
// only enough for clients to determine node state
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Edition = node.Edition.Name()
	reply.Mode = mode.String()
	reply.Issued = node.Edition.Issued()
	reply.Capacity = node.Edition.Capacity()
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}
