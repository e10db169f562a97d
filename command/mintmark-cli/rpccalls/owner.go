// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/mintmark-io/mintmarkd/address"
	"github.com/mintmark-io/mintmarkd/rpc/owner"
)

// GetOwner - resolve the current owner of one token
func (client *Client) GetOwner(id uint64) (*owner.GetReply, error) {

	args := owner.GetArguments{
		Id: id,
	}

	client.printJson("Owner Request", args)

	var reply owner.GetReply
	err := client.client.Call("Owner.Get", args, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Owner Reply", reply)

	return &reply, nil
}

// GetBalance - tokens currently held by an address
func (client *Client) GetBalance(holder *address.Address) (*owner.BalanceReply, error) {

	args := owner.BalanceArguments{
		Owner: *holder,
	}

	client.printJson("Balance Request", args)

	var reply owner.BalanceReply
	err := client.client.Call("Owner.Balance", args, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Balance Reply", reply)

	return &reply, nil
}

// IsPrimary - whether an address received a token at bulk creation
func (client *Client) IsPrimary(holder *address.Address) (*owner.IsPrimaryReply, error) {

	args := owner.IsPrimaryArguments{
		Owner: *holder,
	}

	client.printJson("Primary Request", args)

	var reply owner.IsPrimaryReply
	err := client.client.Call("Owner.IsPrimary", args, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Primary Reply", reply)

	return &reply, nil
}
