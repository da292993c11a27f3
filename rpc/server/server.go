// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/escrowd/custody"
	"github.com/bitmark-inc/escrowd/index"
	"github.com/bitmark-inc/escrowd/ledger"
	"github.com/bitmark-inc/escrowd/rpc/auth"
	"github.com/bitmark-inc/escrowd/rpc/balance"
	"github.com/bitmark-inc/escrowd/rpc/custodian"
	"github.com/bitmark-inc/escrowd/rpc/listings"
	"github.com/bitmark-inc/escrowd/rpc/node"
	"github.com/bitmark-inc/escrowd/rpc/tokens"
)

// Services - the state the handlers act on
type Services struct {
	Chain       string
	Version     string
	Contract    *custody.Contract
	Ledger      *ledger.Store
	Holdings    index.HoldingsSource // custodian holdings for listing reconstruction
	Connections func() uint64
}

// Create - an RPC server with every handler registered
//
// all handlers share one replay cache
func Create(log *logger.L, services Services) *rpc.Server {

	start := time.Now().UTC()
	verifier := auth.NewVerifier()

	holdings := services.Holdings
	if nil == holdings {
		holdings = services.Ledger
	}

	server := rpc.NewServer()

	_ = server.Register(custodian.New(log, services.Contract, verifier))
	_ = server.Register(listings.New(log, services.Contract, holdings, services.Ledger))
	_ = server.Register(tokens.New(log, services.Ledger, verifier))
	_ = server.Register(balance.New(log, services.Ledger, verifier))
	_ = server.Register(node.New(log, services.Chain, services.Version, start, services.Contract, services.Connections))

	return server
}
