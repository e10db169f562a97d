// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package owner

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/mintmark-io/mintmarkd/address"
	"github.com/mintmark-io/mintmarkd/edition"
	"github.com/mintmark-io/mintmarkd/rpc/ratelimit"
)

// Owner
// -----

// Owner - type for the RPC
type Owner struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Edition edition.Edition
}

const (
	rateLimitOwner = 200
	rateBurstOwner = 100
)

func New(log *logger.L, e edition.Edition) *Owner {
	return &Owner{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitOwner, rateBurstOwner),
		Edition: e,
	}
}

// Owner get
// ---------

// GetArguments - arguments for RPC
type GetArguments struct {
	Id uint64 `json:"id,string"`
}

// GetReply - result of owner get RPC
type GetReply struct {
	Owner    address.Address  `json:"owner"`
	Approved *address.Address `json:"approved,omitempty"`
}

// Get - resolve the current owner of one token
func (owner *Owner) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(owner.Limiter); nil != err {
		return err
	}

	log := owner.Log
	log.Infof("Owner.Get: %+v", arguments)

	o, err := owner.Edition.OwnerOf(arguments.Id)
	if nil != err {
		return err
	}
	reply.Owner = o

	if operator, ok := owner.Edition.ApprovedFor(arguments.Id); ok {
		reply.Approved = &operator
	}

	return nil
}

// Owner balance
// -------------

// BalanceArguments - arguments for RPC
type BalanceArguments struct {
	Owner address.Address `json:"owner"` // base58
}

// BalanceReply - result of owner balance RPC
type BalanceReply struct {
	Balance uint64 `json:"balance,string"`
}

// Balance - tokens currently held by an address
func (owner *Owner) Balance(arguments *BalanceArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(owner.Limiter); nil != err {
		return err
	}

	log := owner.Log
	log.Infof("Owner.Balance: %+v", arguments)

	balance, err := owner.Edition.BalanceOf(arguments.Owner)
	if nil != err {
		return err
	}
	reply.Balance = balance

	return nil
}

// Owner primary
// -------------

// IsPrimaryArguments - arguments for RPC
type IsPrimaryArguments struct {
	Owner address.Address `json:"owner"` // base58
}

// IsPrimaryReply - result of owner primary RPC
type IsPrimaryReply struct {
	Primary bool `json:"primary"`
}

// IsPrimary - whether an address received a token at bulk creation
func (owner *Owner) IsPrimary(arguments *IsPrimaryArguments, reply *IsPrimaryReply) error {

	if err := ratelimit.Limit(owner.Limiter); nil != err {
		return err
	}

	reply.Primary = owner.Edition.IsPrimaryHolder(arguments.Owner)
	return nil
}
