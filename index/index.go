// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package index - rebuild the set of tokens for sale from the
// custodian's holdings and the raw listing records, without any
// secondary index
package index

//go:generate mockgen -destination=mocks/index.go -package=mocks github.com/bitmark-inc/escrowd/index HoldingsSource,MetadataSource

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/escrowd/account"
	"github.com/bitmark-inc/escrowd/ledger"
	"github.com/bitmark-inc/escrowd/listing"
	"github.com/bitmark-inc/escrowd/token"
)

// HoldingsSource - tokens currently held by an account
type HoldingsSource interface {
	Holdings(account.Account) ([]ledger.Holding, error)
}

// MetadataSource - descriptive data of a token
type MetadataSource interface {
	Metadata(token.Id) (account.Account, token.Metadata, error)
}

// Entry - one token for sale
type Entry struct {
	Seller   account.Account `json:"seller"`
	Token    token.Id        `json:"token"`
	Price    uint64          `json:"price"`
	Metadata token.Metadata  `json:"metadata"`
}

// Reconstructor - stateless reader of the current listings
type Reconstructor struct {
	custodian account.Account
	store     *listing.Store
	holdings  HoldingsSource
	metadata  MetadataSource
	log       *logger.L
}

// New - reconstructor for one custodian
//
// metadata may be nil, entries then carry empty metadata
func New(custodian account.Account, store *listing.Store, holdings HoldingsSource, metadata MetadataSource) *Reconstructor {
	return &Reconstructor{
		custodian: custodian,
		store:     store,
		holdings:  holdings,
		metadata:  metadata,
		log:       logger.New("index"),
	}
}

// Map - run f on every active listing whose token the custodian holds
//
// each call reads current state, iteration stops at the first error
// from f
func (r *Reconstructor) Map(f func(Entry) error) error {
	holdings, err := r.holdings.Holdings(r.custodian)
	if nil != err {
		return err
	}

	candidates := make(map[token.Id]struct{}, len(holdings))
	for _, h := range holdings {
		if 1 == h.Amount {
			candidates[h.Token] = struct{}{}
		}
	}
	if 0 == len(candidates) {
		return nil
	}

	entries := make([]Entry, 0, len(candidates))
	err = r.store.ScanRecords(func(rawKey []byte, rawValue []byte) error {
		k, l, err := listing.ParseRecord(rawKey, rawValue)
		if nil != err {
			r.log.Warnf("skip record: %x  error: %s", rawKey, err)
			return nil
		}
		if _, ok := candidates[k.Token]; !ok {
			return nil
		}
		if !l.Active {
			return nil
		}

		entries = append(entries, Entry{
			Seller: l.Seller,
			Token:  k.Token,
			Price:  l.Price,
		})
		return nil
	})
	if nil != err {
		return err
	}

	// metadata is read once the listing scan has finished
	for _, e := range entries {
		if nil != r.metadata {
			_, meta, err := r.metadata.Metadata(e.Token)
			if nil != err {
				r.log.Warnf("token: %s  metadata error: %s", e.Token, err)
			} else {
				e.Metadata = meta
			}
		}
		if err := f(e); nil != err {
			return err
		}
	}
	return nil
}

// ListActive - all current entries
func (r *Reconstructor) ListActive() ([]Entry, error) {
	entries := make([]Entry, 0, 16)
	err := r.Map(func(e Entry) error {
		entries = append(entries, e)
		return nil
	})
	if nil != err {
		return nil, err
	}
	return entries, nil
}
