// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package balance

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/escrowd/account"
	"github.com/bitmark-inc/escrowd/fault"
	"github.com/bitmark-inc/escrowd/ledger"
	"github.com/bitmark-inc/escrowd/rpc/auth"
	"github.com/bitmark-inc/escrowd/rpc/ratelimit"
	"github.com/bitmark-inc/escrowd/storage"
)

// Balance
// -------

// Balance - type for the RPC
type Balance struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Verifier *auth.Verifier
	Ledger   *ledger.Store
	Now      func() time.Time
}

const (
	rateLimitBalance = 200
	rateBurstBalance = 100
)

// New - handler for payment balances
func New(log *logger.L, store *ledger.Store, verifier *auth.Verifier) *Balance {
	return &Balance{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitBalance, rateBurstBalance),
		Verifier: verifier,
		Ledger:   store,
		Now:      time.Now,
	}
}

func (b *Balance) caller(method string, arguments auth.Authenticated) (account.Account, error) {
	if err := ratelimit.Limit(b.Limiter); nil != err {
		return account.Account{}, err
	}
	return b.Verifier.Verify(method, arguments, b.Now())
}

// Reply - balance after the operation
type Reply struct {
	Owner  account.Account `json:"owner"`
	Amount uint64          `json:"amount,string"`
}

// Balance get
// -----------

// GetArguments - arguments for RPC
type GetArguments struct {
	Owner account.Account `json:"owner"`
}

// Get - committed balance of an account
func (b *Balance) Get(arguments *GetArguments, reply *Reply) error {
	if err := ratelimit.Limit(b.Limiter); nil != err {
		return err
	}

	reply.Owner = arguments.Owner
	reply.Amount = b.Ledger.Balance(arguments.Owner)
	return nil
}

// Balance fund
// ------------

// FundArguments - arguments for RPC
type FundArguments struct {
	auth.Signed
	Amount uint64 `json:"amount,string"`
}

// Fund - credit the caller, only on a chain that can mint
func (b *Balance) Fund(arguments *FundArguments, reply *Reply) error {
	caller, err := b.caller("Balance.Fund", arguments)
	if nil != err {
		return err
	}
	if 0 == arguments.Amount {
		return fault.InvalidAmount
	}

	b.Log.Infof("Balance.Fund: caller: %s  amount: %d", caller, arguments.Amount)

	err = b.Ledger.Update("fund", func(trx storage.Transaction) error {
		return b.Ledger.Fund(trx, caller, arguments.Amount)
	})
	if nil != err {
		return err
	}
	reply.Owner = caller
	reply.Amount = b.Ledger.Balance(caller)
	return nil
}

// Balance pay
// -----------

// PayArguments - arguments for RPC
type PayArguments struct {
	auth.Signed
	Receiver account.Account `json:"receiver"`
	Amount   uint64          `json:"amount,string"`
}

// Pay - move payment units from the caller
func (b *Balance) Pay(arguments *PayArguments, reply *Reply) error {
	caller, err := b.caller("Balance.Pay", arguments)
	if nil != err {
		return err
	}

	b.Log.Infof("Balance.Pay: %+v", arguments)

	err = b.Ledger.Update("pay", func(trx storage.Transaction) error {
		return b.Ledger.Pay(trx, caller, arguments.Receiver, arguments.Amount)
	})
	if nil != err {
		return err
	}
	reply.Owner = caller
	reply.Amount = b.Ledger.Balance(caller)
	return nil
}
