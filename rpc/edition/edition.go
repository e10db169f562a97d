// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package edition

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/mintmark-io/mintmarkd/address"
	"github.com/mintmark-io/mintmarkd/edition"
	"github.com/mintmark-io/mintmarkd/rpc/ratelimit"
)

// Edition
// -------

// Edition - type for the RPC
type Edition struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Edition edition.Edition
}

const (
	// one bulk creation call counts per address, minting per unit
	MaximumIssueCount = 10000
	MaximumMintCount  = 100

	rateLimitEdition = 200
	rateBurstEdition = 100
)

func New(log *logger.L, e edition.Edition) *Edition {
	return &Edition{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitEdition, rateBurstEdition),
		Edition: e,
	}
}

// Edition issue
// -------------

// IssueArguments - arguments for RPC
type IssueArguments struct {
	Owners []address.Address `json:"owners"` // base58, strictly ascending
}

// IssueReply - result of issue RPC
type IssueReply struct {
	LastId uint64 `json:"lastId,string"`
}

// Issue - bulk-create one chunk of tokens
func (e *Edition) Issue(arguments *IssueArguments, reply *IssueReply) error {

	if err := ratelimit.LimitN(e.Limiter, len(arguments.Owners), MaximumIssueCount); nil != err {
		return err
	}

	log := e.Log
	log.Infof("Edition.Issue: %d owners", len(arguments.Owners))

	lastId, err := e.Edition.Issue(arguments.Owners)
	if nil != err {
		return err
	}
	reply.LastId = lastId

	return nil
}

// Edition mint
// ------------

// MintArguments - arguments for RPC
type MintArguments struct {
	Owner    address.Address `json:"owner"` // base58
	Quantity uint64          `json:"quantity,string"`
	Payment  uint64          `json:"payment,string"` // base units
}

// MintReply - result of mint RPC
type MintReply struct {
	First uint64 `json:"first,string"`
	Last  uint64 `json:"last,string"`
}

// Mint - per-unit creation through the supply/time/price gate
func (e *Edition) Mint(arguments *MintArguments, reply *MintReply) error {

	if err := ratelimit.LimitN(e.Limiter, int(arguments.Quantity), MaximumMintCount); nil != err {
		return err
	}

	log := e.Log
	log.Infof("Edition.Mint: %+v", arguments)

	first, last, err := e.Edition.Mint(arguments.Owner, arguments.Quantity, arguments.Payment)
	if nil != err {
		return err
	}
	reply.First = first
	reply.Last = last

	return nil
}

// Edition transfer
// ----------------

// TransferArguments - arguments for RPC
type TransferArguments struct {
	Id   uint64          `json:"id,string"`
	From address.Address `json:"from"` // base58
	To   address.Address `json:"to"`   // base58
}

// TransferReply - result of transfer RPC
type TransferReply struct {
	Id    uint64          `json:"id,string"`
	Owner address.Address `json:"owner"`
}

// Transfer - move one token to a new owner
func (e *Edition) Transfer(arguments *TransferArguments, reply *TransferReply) error {

	if err := ratelimit.Limit(e.Limiter); nil != err {
		return err
	}

	log := e.Log
	log.Infof("Edition.Transfer: %+v", arguments)

	err := e.Edition.Transfer(arguments.Id, arguments.From, arguments.To)
	if nil != err {
		return err
	}
	reply.Id = arguments.Id
	reply.Owner = arguments.To

	return nil
}

// Edition approve
// ---------------

// ApproveArguments - arguments for RPC
type ApproveArguments struct {
	Id       uint64          `json:"id,string"`
	Owner    address.Address `json:"owner"`    // base58
	Operator address.Address `json:"operator"` // base58, null to clear
}

// ApproveReply - result of approve RPC
type ApproveReply struct {
	Id uint64 `json:"id,string"`
}

// Approve - record or clear a single-token approval
func (e *Edition) Approve(arguments *ApproveArguments, reply *ApproveReply) error {

	if err := ratelimit.Limit(e.Limiter); nil != err {
		return err
	}

	log := e.Log
	log.Infof("Edition.Approve: %+v", arguments)

	err := e.Edition.Approve(arguments.Id, arguments.Owner, arguments.Operator)
	if nil != err {
		return err
	}
	reply.Id = arguments.Id

	return nil
}

// Edition set price
// -----------------

// SetPriceArguments - arguments for RPC
type SetPriceArguments struct {
	Price uint64 `json:"price,string"` // base units per token
}

// SetPriceReply - result of set price RPC
type SetPriceReply struct {
	Price uint64 `json:"price,string"` // effective base units
}

// SetPrice - change the per-unit mint price
func (e *Edition) SetPrice(arguments *SetPriceArguments, reply *SetPriceReply) error {

	if err := ratelimit.Limit(e.Limiter); nil != err {
		return err
	}

	log := e.Log
	log.Infof("Edition.SetPrice: %+v", arguments)

	err := e.Edition.SetUnitPrice(arguments.Price)
	if nil != err {
		return err
	}
	reply.Price = e.Edition.UnitPrice()

	return nil
}

// Edition status
// --------------

// StatusArguments - empty arguments for status request
type StatusArguments struct{}

// StatusReply - result of status RPC
type StatusReply struct {
	Name     string `json:"name"`
	Issued   uint64 `json:"issued,string"`
	Capacity uint64 `json:"capacity,string"` // 0 = unbounded
	Deadline int64  `json:"deadline"`        // unix seconds, 0 = none
	Price    uint64 `json:"price,string"`    // base units per token
}

// Status - current issuance state of the edition
func (e *Edition) Status(_ *StatusArguments, reply *StatusReply) error {

	if err := ratelimit.Limit(e.Limiter); nil != err {
		return err
	}

	reply.Name = e.Edition.Name()
	reply.Issued = e.Edition.Issued()
	reply.Capacity = e.Edition.Capacity()
	reply.Deadline = e.Edition.Deadline()
	reply.Price = e.Edition.UnitPrice()

	return nil
}
