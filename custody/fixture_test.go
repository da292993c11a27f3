// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package custody_test

import (
	"testing"

	"github.com/bitmark-inc/escrowd/account"
	"github.com/bitmark-inc/escrowd/chain"
	"github.com/bitmark-inc/escrowd/constants"
	"github.com/bitmark-inc/escrowd/custody"
	"github.com/bitmark-inc/escrowd/ledger"
	"github.com/bitmark-inc/escrowd/listing"
	"github.com/bitmark-inc/escrowd/storage"
	"github.com/bitmark-inc/escrowd/token"
)

var (
	admin  = account.Account{0xad}
	seller = account.Account{0x5e}
	buyer  = account.Account{0xb7}
)

const initialFunds = 10000000

type fixture struct {
	t         *testing.T
	ledger    *ledger.Store
	contract  *custody.Contract
	custodian account.Account
}

func handles() custody.Handles {
	return custody.Handles{
		Listings:  storage.Pool.Listings,
		Custodian: storage.Pool.Custodian,
	}
}

// storage, a funded seller and buyer and a created custodian
func newFixture(t *testing.T) *fixture {
	setupTestStorage(t)
	return newFixtureOnStorage(t, ledger.NewStore(chain.Local))
}

// as newFixture but storage is already set up
func newFixtureOnStorage(t *testing.T, l *ledger.Store) *fixture {
	f := &fixture{
		t:        t,
		ledger:   l,
		contract: custody.New(handles(), l, l),
	}

	s, err := f.contract.Create(admin)
	if nil != err {
		t.Fatalf("create error: %s", err)
	}
	f.custodian = s.Custodian

	f.fund(seller, initialFunds)
	f.fund(buyer, initialFunds)
	return f
}

func (f *fixture) inTransaction(fn func(trx storage.Transaction) error) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		f.t.Fatalf("begin transaction error: %s", err)
	}
	err = fn(trx)
	if nil != err {
		trx.Abort()
		f.t.Fatalf("ledger setup error: %s", err)
	}
	err = trx.Commit()
	if nil != err {
		f.t.Fatalf("commit error: %s", err)
	}
}

func (f *fixture) fund(a account.Account, amount uint64) {
	f.inTransaction(func(trx storage.Transaction) error {
		return f.ledger.Fund(trx, a, amount)
	})
}

func (f *fixture) mint(owner account.Account, name string) token.Id {
	tok := token.Id(0)
	f.inTransaction(func(trx storage.Transaction) error {
		var err error
		tok, err = f.ledger.CreateToken(trx, owner, token.Metadata{Name: name})
		return err
	})
	return tok
}

func (f *fixture) optIn(a account.Account, tok token.Id) {
	f.inTransaction(func(trx storage.Transaction) error {
		return f.ledger.RegisterHolder(trx, a, tok)
	})
}

// the custodian must be able to hold the token before it is deposited
func (f *fixture) registerCustodian(tok token.Id) {
	err := f.contract.RegisterHoldingCapability(seller, f.payment(seller, constants.RegistrationCost), tok)
	if nil != err {
		f.t.Fatalf("register holding error: %s", err)
	}
}

func (f *fixture) payment(from account.Account, amount uint64) ledger.Payment {
	return ledger.Payment{
		Sender:   from,
		Receiver: f.custodian,
		Amount:   amount,
	}
}

func (f *fixture) deposit(from account.Account, tok token.Id) ledger.AssetTransfer {
	return ledger.AssetTransfer{
		Sender:   from,
		Receiver: f.custodian,
		Token:    tok,
		Amount:   1,
	}
}

// mint, register and list a token for the seller
func (f *fixture) listed(name string, price uint64) token.Id {
	tok := f.mint(seller, name)
	f.registerCustodian(tok)
	err := f.contract.List(seller, f.payment(seller, constants.Rent), f.deposit(seller, tok), price)
	if nil != err {
		f.t.Fatalf("list error: %s", err)
	}
	return tok
}

func (f *fixture) assetBalance(a account.Account, tok token.Id) uint64 {
	n, _ := f.ledger.AssetBalance(a, tok)
	return n
}

// snapshot of everything an operation could change
type snapshot struct {
	sellerBalance    uint64
	buyerBalance     uint64
	custodianBalance uint64
	commission       uint64
	listings         int
}

func (f *fixture) snapshot() snapshot {
	commission, err := f.contract.GetCollectedCommission()
	if nil != err {
		f.t.Fatalf("commission error: %s", err)
	}
	n := 0
	err = f.contract.Store().ScanAll(func(_ listing.Key, _ listing.Listing) error {
		n += 1
		return nil
	})
	if nil != err {
		f.t.Fatalf("scan error: %s", err)
	}
	return snapshot{
		sellerBalance:    f.ledger.Balance(seller),
		buyerBalance:     f.ledger.Balance(buyer),
		custodianBalance: f.ledger.Balance(f.custodian),
		commission:       commission,
		listings:         n,
	}
}
