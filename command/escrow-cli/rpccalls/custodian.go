// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/escrowd/account"
	"github.com/bitmark-inc/escrowd/constants"
	"github.com/bitmark-inc/escrowd/ledger"
	"github.com/bitmark-inc/escrowd/rpc/custodian"
	"github.com/bitmark-inc/escrowd/rpc/listings"
	"github.com/bitmark-inc/escrowd/token"
)

// CreateCustodian - make the key pair's account the admin
func (c *Client) CreateCustodian(admin *account.KeyPair) (*custodian.InfoReply, error) {
	reply := &custodian.InfoReply{}
	err := c.signedCall("Custodian.Create", &custodian.CreateArguments{}, admin, reply)
	if nil != err {
		return nil, err
	}
	c.custodian = reply.Custodian
	return reply, nil
}

// CustodianInfo - admin, custodian address and collected commission
func (c *Client) CustodianInfo() (*custodian.InfoReply, error) {
	reply := &custodian.InfoReply{}
	err := c.call("Custodian.Info", &custodian.InfoArguments{}, reply)
	if nil != err {
		return nil, err
	}
	c.custodian = reply.Custodian
	return reply, nil
}

// the escrow account that payments and deposits go to
func (c *Client) custodianAccount() (account.Account, error) {
	if !c.custodian.IsZero() {
		return c.custodian, nil
	}
	reply, err := c.CustodianInfo()
	if nil != err {
		return account.Account{}, err
	}
	return reply.Custodian, nil
}

// RegisterHolding - pay the custodian to hold a token
func (c *Client) RegisterHolding(owner *account.KeyPair, tok token.Id) (*custodian.StatusReply, error) {
	escrow, err := c.custodianAccount()
	if nil != err {
		return nil, err
	}

	arguments := &custodian.RegisterHoldingArguments{
		Payment: ledger.Payment{
			Sender:   owner.Account,
			Receiver: escrow,
			Amount:   constants.RegistrationCost,
		},
		Token: tok,
	}
	reply := &custodian.StatusReply{}
	err = c.signedCall("Custodian.RegisterHolding", arguments, owner, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// List - deposit the token and pay the rent
func (c *Client) List(seller *account.KeyPair, tok token.Id, price uint64) (*custodian.StatusReply, error) {
	escrow, err := c.custodianAccount()
	if nil != err {
		return nil, err
	}

	arguments := &custodian.ListArguments{
		Rent: ledger.Payment{
			Sender:   seller.Account,
			Receiver: escrow,
			Amount:   constants.Rent,
		},
		Deposit: ledger.AssetTransfer{
			Sender:   seller.Account,
			Receiver: escrow,
			Token:    tok,
			Amount:   1,
		},
		Price: price,
	}
	reply := &custodian.StatusReply{}
	err = c.signedCall("Custodian.List", arguments, seller, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Buy - pay for a listed token, zero amount pays the listed price
func (c *Client) Buy(buyer *account.KeyPair, seller account.Account, tok token.Id, amount uint64) (*custodian.StatusReply, error) {
	escrow, err := c.custodianAccount()
	if nil != err {
		return nil, err
	}

	if 0 == amount {
		l, err := c.GetListing(seller, tok)
		if nil != err {
			return nil, err
		}
		amount = l.Price
	}

	arguments := &custodian.BuyArguments{
		Payment: ledger.Payment{
			Sender:   buyer.Account,
			Receiver: escrow,
			Amount:   amount,
		},
		Seller: seller,
		Token:  tok,
	}
	reply := &custodian.StatusReply{}
	err = c.signedCall("Custodian.Buy", arguments, buyer, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Cancel - seller takes the token back
func (c *Client) Cancel(seller *account.KeyPair, tok token.Id) (*custodian.StatusReply, error) {
	reply := &custodian.StatusReply{}
	err := c.signedCall("Custodian.Cancel", &custodian.CancelArguments{Token: tok}, seller, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// UpdatePrice - seller changes the asking price
func (c *Client) UpdatePrice(seller *account.KeyPair, tok token.Id, price uint64) (*custodian.StatusReply, error) {
	arguments := &custodian.UpdatePriceArguments{
		Token: tok,
		Price: price,
	}
	reply := &custodian.StatusReply{}
	err := c.signedCall("Custodian.UpdatePrice", arguments, seller, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Withdraw - admin collects the commission
func (c *Client) Withdraw(admin *account.KeyPair) (*custodian.WithdrawReply, error) {
	reply := &custodian.WithdrawReply{}
	err := c.signedCall("Custodian.Withdraw", &custodian.WithdrawArguments{}, admin, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// GetListing - one listing by seller and token
func (c *Client) GetListing(seller account.Account, tok token.Id) (*listings.GetReply, error) {
	arguments := &listings.GetArguments{
		Seller: seller,
		Token:  tok,
	}
	reply := &listings.GetReply{}
	err := c.call("Listings.Get", arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// ActiveListings - one page of tokens for sale
func (c *Client) ActiveListings(start uint64, count int) (*listings.ActiveReply, error) {
	arguments := &listings.ActiveArguments{
		Start: start,
		Count: count,
	}
	reply := &listings.ActiveReply{}
	err := c.call("Listings.Active", arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}
