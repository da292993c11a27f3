// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listings

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/escrowd/account"
	"github.com/bitmark-inc/escrowd/custody"
	"github.com/bitmark-inc/escrowd/index"
	"github.com/bitmark-inc/escrowd/rpc/ratelimit"
	"github.com/bitmark-inc/escrowd/token"
)

// Listings
// --------

// Listings - type for the RPC
type Listings struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Contract *custody.Contract
	Holdings index.HoldingsSource
	Metadata index.MetadataSource
}

const (
	MaximumListingsCount = 100
	rateLimitListings    = 200
	rateBurstListings    = 100
)

// New - handler for listing queries
//
// metadata may be nil
func New(log *logger.L, contract *custody.Contract, holdings index.HoldingsSource, metadata index.MetadataSource) *Listings {
	return &Listings{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitListings, rateBurstListings),
		Contract: contract,
		Holdings: holdings,
		Metadata: metadata,
	}
}

// Reconstructor - index of the active listings for the current
// custodian, fails if the custodian has not been created
func (lst *Listings) Reconstructor() (*index.Reconstructor, error) {
	custodian, err := lst.Contract.GetCustodian()
	if nil != err {
		return nil, err
	}
	return index.New(custodian, lst.Contract.Store(), lst.Holdings, lst.Metadata), nil
}

// Listings get
// ------------

// GetArguments - arguments for RPC
type GetArguments struct {
	Seller account.Account `json:"seller"`
	Token  token.Id        `json:"token,string"`
}

// GetReply - result of get RPC
type GetReply struct {
	Seller account.Account `json:"seller"`
	Token  token.Id        `json:"token,string"`
	Price  uint64          `json:"price,string"`
	Active bool            `json:"active"`
}

// Get - a single listing, fails if it does not exist
func (lst *Listings) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(lst.Limiter); nil != err {
		return err
	}

	lst.Log.Infof("Listings.Get: %+v", arguments)

	l, err := lst.Contract.GetListing(arguments.Seller, arguments.Token)
	if nil != err {
		return err
	}

	reply.Seller = l.Seller
	reply.Token = arguments.Token
	reply.Price = l.Price
	reply.Active = l.Active
	return nil
}

// Listings exists
// ---------------

// ExistsReply - result of exists RPC
type ExistsReply struct {
	Exists bool `json:"exists"`
}

// Exists - true if the seller has listed the token
func (lst *Listings) Exists(arguments *GetArguments, reply *ExistsReply) error {
	if err := ratelimit.Limit(lst.Limiter); nil != err {
		return err
	}

	reply.Exists = lst.Contract.ListingExists(arguments.Seller, arguments.Token)
	return nil
}

// Listings active
// ---------------

// ActiveArguments - arguments for RPC
type ActiveArguments struct {
	Start uint64 `json:"start,string"` // number of entries to skip
	Count int    `json:"count"`        // maximum entries to return
}

// ActiveReply - result of active RPC
type ActiveReply struct {
	Next uint64        `json:"next,string"` // Start value for the next call
	Data []index.Entry `json:"data"`
}

// Active - a page of the reconstructed active listings in key order
func (lst *Listings) Active(arguments *ActiveArguments, reply *ActiveReply) error {
	if err := ratelimit.LimitN(lst.Limiter, arguments.Count, MaximumListingsCount); nil != err {
		return err
	}

	lst.Log.Infof("Listings.Active: %+v", arguments)

	r, err := lst.Reconstructor()
	if nil != err {
		return err
	}

	data := make([]index.Entry, 0, arguments.Count)
	n := uint64(0)
	err = r.Map(func(e index.Entry) error {
		if n >= arguments.Start && len(data) < arguments.Count {
			data = append(data, e)
		}
		n += 1
		return nil
	})
	if nil != err {
		return err
	}

	reply.Next = arguments.Start + uint64(len(data))
	reply.Data = data
	return nil
}
