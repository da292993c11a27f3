// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the asset ledger and payment channel the custodian
// settles against
//
// all mutating calls take the caller's storage transaction so that
// their effects commit or abort together with the custodian's own
// records
package ledger

//go:generate mockgen -destination=mocks/ledger.go -package=mocks github.com/bitmark-inc/escrowd/ledger Assets,Payments

import (
	"github.com/bitmark-inc/escrowd/account"
	"github.com/bitmark-inc/escrowd/storage"
	"github.com/bitmark-inc/escrowd/token"
)

// Assets - unique token ownership
type Assets interface {
	// register an account as able to hold a token, harmless if repeated
	RegisterHolder(storage.Transaction, account.Account, token.Id) error

	// move units of a token, fails if the sender's balance is too low
	// or the receiver is not registered for the token
	TransferAsset(trx storage.Transaction, tok token.Id, from account.Account, to account.Account, amount uint64) error
}

// Payments - value transfer in minimum units
type Payments interface {
	// fails if the sender's balance is too low
	Pay(trx storage.Transaction, from account.Account, to account.Account, amount uint64) error
}

// Payment - an inbound payment that accompanies a request
type Payment struct {
	Sender   account.Account `json:"sender"`
	Receiver account.Account `json:"receiver"`
	Amount   uint64          `json:"amount"`
}

// AssetTransfer - an inbound token transfer that accompanies a request
type AssetTransfer struct {
	Sender   account.Account `json:"sender"`
	Receiver account.Account `json:"receiver"`
	Token    token.Id        `json:"token"`
	Amount   uint64          `json:"amount"`
}

// Holding - units of one token held by an account
type Holding struct {
	Token  token.Id `json:"token"`
	Amount uint64   `json:"amount"`
}
