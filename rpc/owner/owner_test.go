// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package owner_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/mintmark-io/mintmarkd/address"
	"github.com/mintmark-io/mintmarkd/fault"
	"github.com/mintmark-io/mintmarkd/rpc/fixtures"
	"github.com/mintmark-io/mintmarkd/rpc/mocks"
	"github.com/mintmark-io/mintmarkd/rpc/owner"
)

func testAddress(n byte) address.Address {
	var a address.Address
	a[0] = n
	return a
}

func TestOwnerGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockEdition(ctl)
	o := owner.New(logger.New(fixtures.LogCategory), e)

	holder := testAddress(1)
	operator := testAddress(2)

	e.EXPECT().OwnerOf(uint64(7)).Return(holder, nil).Times(1)
	e.EXPECT().ApprovedFor(uint64(7)).Return(operator, true).Times(1)

	arg := owner.GetArguments{Id: 7}
	var reply owner.GetReply
	err := o.Get(&arg, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, holder, reply.Owner, "wrong owner")
	assert.NotNil(t, reply.Approved, "missing approval")
	assert.Equal(t, operator, *reply.Approved, "wrong approval")
}

func TestOwnerGetNotFound(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockEdition(ctl)
	o := owner.New(logger.New(fixtures.LogCategory), e)

	e.EXPECT().OwnerOf(uint64(99)).Return(address.Nil, fault.TokenNotFound).Times(1)

	arg := owner.GetArguments{Id: 99}
	var reply owner.GetReply
	err := o.Get(&arg, &reply)
	assert.Equal(t, fault.TokenNotFound, err, "wrong Get error")
}

func TestOwnerBalance(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockEdition(ctl)
	o := owner.New(logger.New(fixtures.LogCategory), e)

	holder := testAddress(1)
	e.EXPECT().BalanceOf(holder).Return(uint64(3), nil).Times(1)

	arg := owner.BalanceArguments{Owner: holder}
	var reply owner.BalanceReply
	err := o.Balance(&arg, &reply)
	assert.Nil(t, err, "wrong Balance")
	assert.Equal(t, uint64(3), reply.Balance, "wrong balance")
}

func TestOwnerIsPrimary(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockEdition(ctl)
	o := owner.New(logger.New(fixtures.LogCategory), e)

	holder := testAddress(1)
	stranger := testAddress(9)
	e.EXPECT().IsPrimaryHolder(holder).Return(true).Times(1)
	e.EXPECT().IsPrimaryHolder(stranger).Return(false).Times(1)

	var reply owner.IsPrimaryReply
	err := o.IsPrimary(&owner.IsPrimaryArguments{Owner: holder}, &reply)
	assert.Nil(t, err, "wrong IsPrimary")
	assert.True(t, reply.Primary, "wrong primary")

	err = o.IsPrimary(&owner.IsPrimaryArguments{Owner: stranger}, &reply)
	assert.Nil(t, err, "wrong IsPrimary")
	assert.False(t, reply.Primary, "wrong primary")
}
