// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/mintmark-io/mintmarkd/address"
	"github.com/mintmark-io/mintmarkd/rpc/edition"
)

// Issue - bulk-create one chunk of tokens
// owners must already be sorted ascending with no duplicates
func (client *Client) Issue(owners []address.Address) (*edition.IssueReply, error) {

	args := edition.IssueArguments{
		Owners: owners,
	}

	client.printJson("Issue Request", args)

	var reply edition.IssueReply
	err := client.client.Call("Edition.Issue", args, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Issue Reply", reply)

	return &reply, nil
}

// Mint - per-unit creation through the supply/time/price gate
func (client *Client) Mint(owner *address.Address, quantity uint64, payment uint64) (*edition.MintReply, error) {

	args := edition.MintArguments{
		Owner:    *owner,
		Quantity: quantity,
		Payment:  payment,
	}

	client.printJson("Mint Request", args)

	var reply edition.MintReply
	err := client.client.Call("Edition.Mint", args, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Mint Reply", reply)

	return &reply, nil
}

// Transfer - move one token to a new owner
func (client *Client) Transfer(id uint64, from *address.Address, to *address.Address) (*edition.TransferReply, error) {

	args := edition.TransferArguments{
		Id:   id,
		From: *from,
		To:   *to,
	}

	client.printJson("Transfer Request", args)

	var reply edition.TransferReply
	err := client.client.Call("Edition.Transfer", args, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Transfer Reply", reply)

	return &reply, nil
}

// Approve - record or clear a single-token approval
func (client *Client) Approve(id uint64, owner *address.Address, operator *address.Address) (*edition.ApproveReply, error) {

	args := edition.ApproveArguments{
		Id:       id,
		Owner:    *owner,
		Operator: *operator,
	}

	client.printJson("Approve Request", args)

	var reply edition.ApproveReply
	err := client.client.Call("Edition.Approve", args, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Approve Reply", reply)

	return &reply, nil
}

// SetPrice - change the per-unit mint price
func (client *Client) SetPrice(price uint64) (*edition.SetPriceReply, error) {

	args := edition.SetPriceArguments{
		Price: price,
	}

	client.printJson("SetPrice Request", args)

	var reply edition.SetPriceReply
	err := client.client.Call("Edition.SetPrice", args, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("SetPrice Reply", reply)

	return &reply, nil
}

// GetStatus - current issuance state of the edition
func (client *Client) GetStatus() (*edition.StatusReply, error) {

	var reply edition.StatusReply
	err := client.client.Call("Edition.Status", edition.StatusArguments{}, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Status Reply", reply)

	return &reply, nil
}
