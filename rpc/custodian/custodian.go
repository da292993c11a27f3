// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package custodian

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/escrowd/account"
	"github.com/bitmark-inc/escrowd/custody"
	"github.com/bitmark-inc/escrowd/fault"
	"github.com/bitmark-inc/escrowd/ledger"
	"github.com/bitmark-inc/escrowd/rpc/auth"
	"github.com/bitmark-inc/escrowd/rpc/ratelimit"
	"github.com/bitmark-inc/escrowd/token"
)

// Custodian
// ---------

// Custodian - type for the RPC
type Custodian struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Verifier *auth.Verifier
	Contract *custody.Contract
	Now      func() time.Time
}

const (
	rateLimitCustodian = 100
	rateBurstCustodian = 50
)

// New - handler for the custodian operations
func New(log *logger.L, contract *custody.Contract, verifier *auth.Verifier) *Custodian {
	return &Custodian{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitCustodian, rateBurstCustodian),
		Verifier: verifier,
		Contract: contract,
		Now:      time.Now,
	}
}

// StatusReply - result of a state changing operation with no value
type StatusReply struct {
	Ok bool `json:"ok"`
}

// rate limit then check the signature
func (c *Custodian) caller(method string, arguments auth.Authenticated) (account.Account, error) {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return account.Account{}, err
	}
	return c.Verifier.Verify(method, arguments, c.Now())
}

// the caller's signature is the only authority the payment carries
func payerIsCaller(caller account.Account, payment ledger.Payment) error {
	if caller != payment.Sender {
		return fault.InvalidPaymentSender
	}
	return nil
}

// Custodian create
// ----------------

// CreateArguments - arguments for RPC
type CreateArguments struct {
	auth.Signed
}

// InfoReply - the custodian state
type InfoReply struct {
	Admin      account.Account `json:"admin"`
	Custodian  account.Account `json:"custodian"`
	Commission uint64          `json:"commission,string"`
}

// Create - make the caller the admin
func (c *Custodian) Create(arguments *CreateArguments, reply *InfoReply) error {
	caller, err := c.caller("Custodian.Create", arguments)
	if nil != err {
		return err
	}

	c.Log.Infof("Custodian.Create: caller: %s", caller)

	s, err := c.Contract.Create(caller)
	if nil != err {
		return err
	}

	reply.Admin = s.Admin
	reply.Custodian = s.Custodian
	reply.Commission = s.Commission
	return nil
}

// Custodian info
// --------------

// InfoArguments - arguments for RPC
type InfoArguments struct{}

// Info - current admin, custodian account and collected commission
func (c *Custodian) Info(arguments *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	s, err := c.Contract.Info()
	if nil != err {
		return err
	}

	reply.Admin = s.Admin
	reply.Custodian = s.Custodian
	reply.Commission = s.Commission
	return nil
}

// Custodian register holding
// --------------------------

// RegisterHoldingArguments - arguments for RPC
type RegisterHoldingArguments struct {
	auth.Signed
	Payment ledger.Payment `json:"payment"`
	Token   token.Id       `json:"token,string"`
}

// RegisterHolding - pay for the custodian to be able to hold a token
func (c *Custodian) RegisterHolding(arguments *RegisterHoldingArguments, reply *StatusReply) error {
	caller, err := c.caller("Custodian.RegisterHolding", arguments)
	if nil != err {
		return err
	}
	if err := payerIsCaller(caller, arguments.Payment); nil != err {
		return err
	}

	c.Log.Infof("Custodian.RegisterHolding: %+v", arguments)

	err = c.Contract.RegisterHoldingCapability(caller, arguments.Payment, arguments.Token)
	if nil != err {
		return err
	}
	reply.Ok = true
	return nil
}

// Custodian list
// --------------

// ListArguments - arguments for RPC
type ListArguments struct {
	auth.Signed
	Rent    ledger.Payment       `json:"rent"`
	Deposit ledger.AssetTransfer `json:"deposit"`
	Price   uint64               `json:"price,string"`
}

// List - deposit a token for sale
func (c *Custodian) List(arguments *ListArguments, reply *StatusReply) error {
	caller, err := c.caller("Custodian.List", arguments)
	if nil != err {
		return err
	}
	if err := payerIsCaller(caller, arguments.Rent); nil != err {
		return err
	}

	c.Log.Infof("Custodian.List: %+v", arguments)

	err = c.Contract.List(caller, arguments.Rent, arguments.Deposit, arguments.Price)
	if nil != err {
		return err
	}
	reply.Ok = true
	return nil
}

// Custodian buy
// -------------

// BuyArguments - arguments for RPC
type BuyArguments struct {
	auth.Signed
	Payment ledger.Payment  `json:"payment"`
	Seller  account.Account `json:"seller"`
	Token   token.Id        `json:"token,string"`
}

// Buy - pay for a listed token
func (c *Custodian) Buy(arguments *BuyArguments, reply *StatusReply) error {
	caller, err := c.caller("Custodian.Buy", arguments)
	if nil != err {
		return err
	}
	if err := payerIsCaller(caller, arguments.Payment); nil != err {
		return err
	}

	c.Log.Infof("Custodian.Buy: %+v", arguments)

	err = c.Contract.Buy(caller, arguments.Payment, arguments.Seller, arguments.Token)
	if nil != err {
		return err
	}
	reply.Ok = true
	return nil
}

// Custodian cancel
// ----------------

// CancelArguments - arguments for RPC
type CancelArguments struct {
	auth.Signed
	Token token.Id `json:"token,string"`
}

// Cancel - withdraw the caller's listing
func (c *Custodian) Cancel(arguments *CancelArguments, reply *StatusReply) error {
	caller, err := c.caller("Custodian.Cancel", arguments)
	if nil != err {
		return err
	}

	c.Log.Infof("Custodian.Cancel: caller: %s  token: %s", caller, arguments.Token)

	err = c.Contract.Cancel(caller, arguments.Token)
	if nil != err {
		return err
	}
	reply.Ok = true
	return nil
}

// Custodian update price
// ----------------------

// UpdatePriceArguments - arguments for RPC
type UpdatePriceArguments struct {
	auth.Signed
	Token token.Id `json:"token,string"`
	Price uint64   `json:"price,string"`
}

// UpdatePrice - change the price of the caller's listing
func (c *Custodian) UpdatePrice(arguments *UpdatePriceArguments, reply *StatusReply) error {
	caller, err := c.caller("Custodian.UpdatePrice", arguments)
	if nil != err {
		return err
	}

	c.Log.Infof("Custodian.UpdatePrice: caller: %s  token: %s  price: %d", caller, arguments.Token, arguments.Price)

	err = c.Contract.UpdatePrice(caller, arguments.Token, arguments.Price)
	if nil != err {
		return err
	}
	reply.Ok = true
	return nil
}

// Custodian withdraw
// ------------------

// WithdrawArguments - arguments for RPC
type WithdrawArguments struct {
	auth.Signed
}

// WithdrawReply - result of withdraw RPC
type WithdrawReply struct {
	Amount uint64 `json:"amount,string"`
}

// Withdraw - pay the collected commission to the admin
func (c *Custodian) Withdraw(arguments *WithdrawArguments, reply *WithdrawReply) error {
	caller, err := c.caller("Custodian.Withdraw", arguments)
	if nil != err {
		return err
	}

	c.Log.Infof("Custodian.Withdraw: caller: %s", caller)

	amount, err := c.Contract.Withdraw(caller)
	if nil != err {
		return err
	}
	reply.Amount = amount
	return nil
}
