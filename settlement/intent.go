// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package settlement

import (
	"fmt"

	"github.com/bitmark-inc/escrowd/account"
	"github.com/bitmark-inc/escrowd/constants"
	"github.com/bitmark-inc/escrowd/listing"
	"github.com/bitmark-inc/escrowd/token"
)

// Kind - type of an outbound transfer
type Kind int

// transfer kinds
const (
	AssetTransfer Kind = iota
	Payment
)

// Intent - one outbound transfer from the custodian
type Intent struct {
	Kind     Kind
	Receiver account.Account
	Token    token.Id // AssetTransfer only
	Amount   uint64
}

func (i Intent) String() string {
	switch i.Kind {
	case AssetTransfer:
		return fmt.Sprintf("asset %s x%d -> %s", i.Token, i.Amount, i.Receiver)
	case Payment:
		return fmt.Sprintf("pay %d -> %s", i.Amount, i.Receiver)
	default:
		return fmt.Sprintf("unknown kind %d", i.Kind)
	}
}

// Plan - ordered transfers plus the change to the commission
// accumulator, applied all together or not at all
type Plan struct {
	Intents    []Intent
	Commission uint64
}

// PlanBuy - release the token to the buyer, pay the seller their
// proceeds and refund the rent
func PlanBuy(key listing.Key, l listing.Listing, buyer account.Account) Plan {
	return Plan{
		Intents: []Intent{
			{Kind: AssetTransfer, Receiver: buyer, Token: key.Token, Amount: 1},
			{Kind: Payment, Receiver: l.Seller, Amount: SellerProceeds(l.Price)},
			{Kind: Payment, Receiver: l.Seller, Amount: constants.Rent},
		},
		Commission: Commission(l.Price),
	}
}

// PlanCancel - return the token to the seller and refund the rent
func PlanCancel(key listing.Key) Plan {
	return Plan{
		Intents: []Intent{
			{Kind: AssetTransfer, Receiver: key.Seller, Token: key.Token, Amount: 1},
			{Kind: Payment, Receiver: key.Seller, Amount: constants.Rent},
		},
	}
}

// PlanWithdraw - pay the collected commission to the admin
func PlanWithdraw(admin account.Account, amount uint64) Plan {
	return Plan{
		Intents: []Intent{
			{Kind: Payment, Receiver: admin, Amount: amount},
		},
	}
}

// Paid - total of the payment intents to a receiver
func (p Plan) Paid(receiver account.Account) uint64 {
	total := uint64(0)
	for _, i := range p.Intents {
		if Payment == i.Kind && receiver == i.Receiver {
			total += i.Amount
		}
	}
	return total
}
