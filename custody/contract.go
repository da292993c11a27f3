// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package custody - the escrow state machine
//
// every operation first validates all of its preconditions without
// side effects, then applies its inbound transfers, store changes and
// outbound transfers inside one storage transaction; any failure
// aborts the transaction so nothing is changed
package custody

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/escrowd/account"
	"github.com/bitmark-inc/escrowd/constants"
	"github.com/bitmark-inc/escrowd/fault"
	"github.com/bitmark-inc/escrowd/ledger"
	"github.com/bitmark-inc/escrowd/listing"
	"github.com/bitmark-inc/escrowd/settlement"
	"github.com/bitmark-inc/escrowd/storage"
	"github.com/bitmark-inc/escrowd/token"
)

// Handles - storage pools used by the contract
type Handles struct {
	Listings  *storage.PoolHandle
	Custodian *storage.PoolHandle
}

// Contract - the custodian
type Contract struct {
	sync.Mutex

	handles  Handles
	store    *listing.Store
	assets   ledger.Assets
	payments ledger.Payments
	log      *logger.L
}

// New - custodian backed by the given pools and ledger
func New(handles Handles, assets ledger.Assets, payments ledger.Payments) *Contract {
	return &Contract{
		handles:  handles,
		store:    listing.NewStore(handles.Listings),
		assets:   assets,
		payments: payments,
		log:      logger.New("custody"),
	}
}

// Store - the listing records
func (c *Contract) Store() *listing.Store {
	return c.store
}

// run one operation inside a transaction
func (c *Contract) run(operation string, f func(trx storage.Transaction) error) error {

	// critical code - one operation at a time
	c.Lock()
	defer c.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	err = f(trx)
	if nil != err {
		trx.Abort()
		c.log.Debugf("%s rejected: %s", operation, err)
		return err
	}

	err = trx.Commit()
	if nil != err {
		c.log.Errorf("%s commit error: %s", operation, err)
		return err
	}
	return nil
}

// Create - set the admin, only valid once
func (c *Contract) Create(caller account.Account) (State, error) {
	s := State{}
	err := c.run("create", func(trx storage.Transaction) error {
		if trx.Has(c.handles.Custodian, stateKey) {
			return fault.AlreadyCreated
		}
		s = State{
			Admin:      caller,
			Custodian:  CustodianAddress(caller),
			Commission: 0,
		}
		c.putState(trx, s)
		return nil
	})
	if nil != err {
		return State{}, err
	}
	c.log.Infof("created: admin: %s  custodian: %s", s.Admin, s.Custodian)
	return s, nil
}

// RegisterHoldingCapability - register the custodian as a holder of a
// token, funded by an inbound payment
//
// each call spends the registration payment even if the custodian is
// already registered
func (c *Contract) RegisterHoldingCapability(caller account.Account, payment ledger.Payment, tok token.Id) error {
	return c.run("registerHoldingCapability", func(trx storage.Transaction) error {
		s, err := c.pendingState(trx)
		if nil != err {
			return err
		}
		if payment.Receiver != s.Custodian {
			return fault.InvalidPaymentReceiver
		}
		if payment.Amount < constants.RegistrationCost {
			return fault.PaymentBelowRegistrationCost
		}

		if err := c.payments.Pay(trx, payment.Sender, payment.Receiver, payment.Amount); nil != err {
			return err
		}
		if err := c.assets.RegisterHolder(trx, s.Custodian, tok); nil != err {
			return err
		}
		c.log.Infof("register: token: %s  by: %s", tok, caller)
		return nil
	})
}

// List - take a token into custody and offer it at a price
func (c *Contract) List(caller account.Account, rent ledger.Payment, deposit ledger.AssetTransfer, price uint64) error {
	return c.run("list", func(trx storage.Transaction) error {
		s, err := c.pendingState(trx)
		if nil != err {
			return err
		}
		if 0 == price {
			return fault.InvalidPrice
		}
		if rent.Receiver != s.Custodian {
			return fault.InvalidPaymentReceiver
		}
		if rent.Amount < constants.Rent {
			return fault.PaymentBelowRent
		}
		if deposit.Receiver != s.Custodian {
			return fault.InvalidDepositReceiver
		}
		if 1 != deposit.Amount {
			return fault.InvalidDepositAmount
		}
		if deposit.Sender != caller {
			return fault.InvalidDepositSender
		}
		key := listing.Key{
			Seller: caller,
			Token:  deposit.Token,
		}
		if c.store.ExistsPending(trx, key) {
			return fault.ListingAlreadyExists
		}

		if err := c.payments.Pay(trx, rent.Sender, rent.Receiver, rent.Amount); nil != err {
			return err
		}
		if err := c.assets.TransferAsset(trx, deposit.Token, deposit.Sender, deposit.Receiver, deposit.Amount); nil != err {
			return err
		}
		c.store.Put(trx, key, listing.Listing{
			Seller: caller,
			Price:  price,
			Active: true,
		})
		c.log.Infof("list: seller: %s  token: %s  price: %d", caller, deposit.Token, price)
		return nil
	})
}

// Buy - settle a sale
//
// any payment above the price stays with the custodian
func (c *Contract) Buy(caller account.Account, payment ledger.Payment, seller account.Account, tok token.Id) error {
	return c.run("buy", func(trx storage.Transaction) error {
		s, err := c.pendingState(trx)
		if nil != err {
			return err
		}
		key := listing.Key{
			Seller: seller,
			Token:  tok,
		}
		l, err := c.store.GetPending(trx, key)
		if nil != err {
			return err
		}
		if l.Seller != seller {
			return fault.ListingSellerMismatch
		}
		if !l.Active {
			return fault.ListingIsNotActive
		}
		if payment.Receiver != s.Custodian {
			return fault.InvalidPaymentReceiver
		}
		if payment.Amount < l.Price {
			return fault.PaymentBelowPrice
		}
		if caller == seller {
			return fault.BuyerIsSeller
		}

		plan := settlement.PlanBuy(key, l, caller)
		if s.Commission+plan.Commission < s.Commission {
			return fault.CommissionOverflow
		}

		if err := c.payments.Pay(trx, payment.Sender, payment.Receiver, payment.Amount); nil != err {
			return err
		}
		if err := c.apply(trx, s.Custodian, plan); nil != err {
			return err
		}
		s.Commission += plan.Commission
		c.putState(trx, s)
		c.store.Delete(trx, key)

		c.log.Infof("buy: buyer: %s  seller: %s  token: %s  price: %d  commission: %d", caller, seller, tok, l.Price, plan.Commission)
		return nil
	})
}

// Cancel - return a listed token to its seller
func (c *Contract) Cancel(caller account.Account, tok token.Id) error {
	return c.run("cancel", func(trx storage.Transaction) error {
		s, err := c.pendingState(trx)
		if nil != err {
			return err
		}
		key := listing.Key{
			Seller: caller,
			Token:  tok,
		}
		l, err := c.store.GetPending(trx, key)
		if nil != err {
			return err
		}
		if l.Seller != caller {
			return fault.CallerNotSeller
		}

		if err := c.apply(trx, s.Custodian, settlement.PlanCancel(key)); nil != err {
			return err
		}
		c.store.Delete(trx, key)

		c.log.Infof("cancel: seller: %s  token: %s", caller, tok)
		return nil
	})
}

// UpdatePrice - change the price of a listing
func (c *Contract) UpdatePrice(caller account.Account, tok token.Id, newPrice uint64) error {
	return c.run("updatePrice", func(trx storage.Transaction) error {
		if _, err := c.pendingState(trx); nil != err {
			return err
		}
		if 0 == newPrice {
			return fault.InvalidPrice
		}
		key := listing.Key{
			Seller: caller,
			Token:  tok,
		}
		l, err := c.store.GetPending(trx, key)
		if nil != err {
			return err
		}
		if l.Seller != caller {
			return fault.CallerNotSeller
		}
		if !l.Active {
			return fault.ListingIsNotActive
		}

		oldPrice := l.Price
		l.Price = newPrice
		c.store.Put(trx, key, l)

		c.log.Infof("update price: seller: %s  token: %s  price: %d -> %d", caller, tok, oldPrice, newPrice)
		return nil
	})
}

// Withdraw - pay all collected commission to the admin
func (c *Contract) Withdraw(caller account.Account) (uint64, error) {
	amount := uint64(0)
	err := c.run("withdraw", func(trx storage.Transaction) error {
		s, err := c.pendingState(trx)
		if nil != err {
			return err
		}
		if caller != s.Admin {
			return fault.CallerNotAdmin
		}
		if 0 == s.Commission {
			return fault.NoCommissionToWithdraw
		}

		// zero before paying out
		amount = s.Commission
		s.Commission = 0
		c.putState(trx, s)

		return c.apply(trx, s.Custodian, settlement.PlanWithdraw(s.Admin, amount))
	})
	if nil != err {
		return 0, err
	}
	c.log.Infof("withdraw: %d  to: %s", amount, caller)
	return amount, nil
}

// issue the outbound transfers of a plan, in order
func (c *Contract) apply(trx storage.Transaction, custodian account.Account, plan settlement.Plan) error {
	for _, intent := range plan.Intents {
		var err error
		switch intent.Kind {
		case settlement.AssetTransfer:
			err = c.assets.TransferAsset(trx, intent.Token, custodian, intent.Receiver, intent.Amount)
		case settlement.Payment:
			err = c.payments.Pay(trx, custodian, intent.Receiver, intent.Amount)
		default:
			logger.Panicf("custody: unknown intent: %s", intent)
		}
		if nil != err {
			c.log.Warnf("intent: %s  error: %s", intent, err)
			return err
		}
	}
	return nil
}
