// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokens

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
	"github.com/bitmark-inc/escrowd/token"
)

// Tokens
// ------

// Tokens - type for the RPC
type Tokens struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Verifier *auth.Verifier
	Ledger   *ledger.Store
	Now      func() time.Time
}

const (
	rateLimitTokens = 100
	rateBurstTokens = 50
)

// New - handler for the token ledger
func New(log *logger.L, store *ledger.Store, verifier *auth.Verifier) *Tokens {
	return &Tokens{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitTokens, rateBurstTokens),
		Verifier: verifier,
		Ledger:   store,
		Now:      time.Now,
	}
}

func (tk *Tokens) caller(method string, arguments auth.Authenticated) (account.Account, error) {
	if err := ratelimit.Limit(tk.Limiter); nil != err {
		return account.Account{}, err
	}
	return tk.Verifier.Verify(method, arguments, tk.Now())
}

// StatusReply - result of a state changing operation with no value
type StatusReply struct {
	Ok bool `json:"ok"`
}

// Tokens create
// -------------

// CreateArguments - arguments for RPC
type CreateArguments struct {
	auth.Signed
	Metadata token.Metadata `json:"metadata"`
}

// CreateReply - result of create RPC
type CreateReply struct {
	Token token.Id `json:"token,string"`
}

// Create - mint a unique token held by the caller
func (tk *Tokens) Create(arguments *CreateArguments, reply *CreateReply) error {
	caller, err := tk.caller("Tokens.Create", arguments)
	if nil != err {
		return err
	}
	if "" == arguments.Metadata.Name {
		return fault.MissingParameters
	}

	tk.Log.Infof("Tokens.Create: %+v", arguments)

	return tk.Ledger.Update("create", func(trx storage.Transaction) error {
		tok, err := tk.Ledger.CreateToken(trx, caller, arguments.Metadata)
		if nil != err {
			return err
		}
		reply.Token = tok
		return nil
	})
}

// Tokens opt in
// -------------

// OptInArguments - arguments for RPC
type OptInArguments struct {
	auth.Signed
	Token token.Id `json:"token,string"`
}

// OptIn - register the caller as able to hold a token
func (tk *Tokens) OptIn(arguments *OptInArguments, reply *StatusReply) error {
	caller, err := tk.caller("Tokens.OptIn", arguments)
	if nil != err {
		return err
	}

	tk.Log.Infof("Tokens.OptIn: caller: %s  token: %s", caller, arguments.Token)

	err = tk.Ledger.Update("optIn", func(trx storage.Transaction) error {
		return tk.Ledger.RegisterHolder(trx, caller, arguments.Token)
	})
	if nil != err {
		return err
	}
	reply.Ok = true
	return nil
}

// Tokens transfer
// ---------------

// TransferArguments - arguments for RPC
type TransferArguments struct {
	auth.Signed
	Receiver account.Account `json:"receiver"`
	Token    token.Id        `json:"token,string"`
	Amount   uint64          `json:"amount,string"`
}

// Transfer - move token units from the caller
func (tk *Tokens) Transfer(arguments *TransferArguments, reply *StatusReply) error {
	caller, err := tk.caller("Tokens.Transfer", arguments)
	if nil != err {
		return err
	}

	tk.Log.Infof("Tokens.Transfer: %+v", arguments)

	err = tk.Ledger.Update("transfer", func(trx storage.Transaction) error {
		return tk.Ledger.TransferAsset(trx, arguments.Token, caller, arguments.Receiver, arguments.Amount)
	})
	if nil != err {
		return err
	}
	reply.Ok = true
	return nil
}

// Tokens get
// ----------

// GetArguments - arguments for RPC
type GetArguments struct {
	Token token.Id `json:"token,string"`
}

// GetReply - result of get RPC
type GetReply struct {
	Creator  account.Account `json:"creator"`
	Metadata token.Metadata  `json:"metadata"`
}

// Get - creator and metadata of a token
func (tk *Tokens) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(tk.Limiter); nil != err {
		return err
	}

	creator, meta, err := tk.Ledger.Metadata(arguments.Token)
	if nil != err {
		return err
	}
	reply.Creator = creator
	reply.Metadata = meta
	return nil
}

// Tokens holdings
// ---------------

// HoldingsArguments - arguments for RPC
type HoldingsArguments struct {
	Owner account.Account `json:"owner"`
}

// HoldingsReply - result of holdings RPC
type HoldingsReply struct {
	Holdings []ledger.Holding `json:"holdings"`
}

// Holdings - every token the owner is registered for
func (tk *Tokens) Holdings(arguments *HoldingsArguments, reply *HoldingsReply) error {
	if err := ratelimit.Limit(tk.Limiter); nil != err {
		return err
	}

	holdings, err := tk.Ledger.Holdings(arguments.Owner)
	if nil != err {
		return err
	}
	reply.Holdings = holdings
	return nil
}
