// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package settlement_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/escrowd/account"
	"github.com/bitmark-inc/escrowd/constants"
	"github.com/bitmark-inc/escrowd/fault"
	"github.com/bitmark-inc/escrowd/listing"
	"github.com/bitmark-inc/escrowd/settlement"
)

func TestCommission(t *testing.T) {
	tests := []struct {
		price      uint64
		commission uint64
		proceeds   uint64
	}{
		{1000000, 25000, 975000},
		{1, 0, 1},
		{39, 0, 39},
		{40, 1, 39},
		{1001, 25, 976},
		{math.MaxUint64, 461168601842738790, math.MaxUint64 - 461168601842738790},
	}

	for i, item := range tests {
		assert.Equal(t, item.commission, settlement.Commission(item.price), "%d: commission", i)
		assert.Equal(t, item.proceeds, settlement.SellerProceeds(item.price), "%d: proceeds", i)
		assert.Equal(t, item.price, settlement.Commission(item.price)+settlement.SellerProceeds(item.price), "%d: split", i)
	}
}

func TestCheckRent(t *testing.T) {
	assert.Equal(t, uint64(35300), settlement.DefaultCostModel.StorageCost(listing.KeyLength, listing.ValueLength), "reference cost")
	assert.Nil(t, settlement.CheckRent(settlement.DefaultCostModel, constants.Rent), "reference rent")

	err := settlement.CheckRent(settlement.DefaultCostModel, constants.Rent-1)
	assert.Equal(t, fault.RentMismatch, err, "low rent")
	assert.True(t, fault.IsErrConfiguration(err), "error class")

	expensive := settlement.CostModel{Base: 2500, PerByte: 500}
	assert.Equal(t, fault.RentMismatch, settlement.CheckRent(expensive, constants.Rent), "different host")
}

func TestPlanBuy(t *testing.T) {
	seller := account.Account{1}
	buyer := account.Account{2}
	k := listing.Key{Seller: seller, Token: 77}
	l := listing.Listing{Seller: seller, Price: 1000000, Active: true}

	plan := settlement.PlanBuy(k, l, buyer)

	expected := []settlement.Intent{
		{Kind: settlement.AssetTransfer, Receiver: buyer, Token: 77, Amount: 1},
		{Kind: settlement.Payment, Receiver: seller, Amount: 975000},
		{Kind: settlement.Payment, Receiver: seller, Amount: constants.Rent},
	}
	assert.Equal(t, expected, plan.Intents, "intents")
	assert.Equal(t, uint64(25000), plan.Commission, "commission")
	assert.Equal(t, uint64(975000+constants.Rent), plan.Paid(seller), "seller total")
	assert.Equal(t, uint64(0), plan.Paid(buyer), "buyer is not paid")
}

func TestPlanCancel(t *testing.T) {
	seller := account.Account{1}
	plan := settlement.PlanCancel(listing.Key{Seller: seller, Token: 5})

	expected := []settlement.Intent{
		{Kind: settlement.AssetTransfer, Receiver: seller, Token: 5, Amount: 1},
		{Kind: settlement.Payment, Receiver: seller, Amount: constants.Rent},
	}
	assert.Equal(t, expected, plan.Intents, "intents")
	assert.Equal(t, uint64(0), plan.Commission, "no commission")
}

func TestPlanWithdraw(t *testing.T) {
	admin := account.Account{9}
	plan := settlement.PlanWithdraw(admin, 25000)
	assert.Equal(t, uint64(25000), plan.Paid(admin), "admin payout")
	assert.Equal(t, 1, len(plan.Intents), "single payout")
}
