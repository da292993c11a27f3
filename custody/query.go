// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package custody

import (
	"github.com/bitmark-inc/escrowd/account"
	"github.com/bitmark-inc/escrowd/listing"
	"github.com/bitmark-inc/escrowd/token"
)

// read only queries see committed state and never take the contract lock

// Info - the committed custodian state
func (c *Contract) Info() (State, error) {
	return c.decodeState(c.handles.Custodian.Get(stateKey))
}

// GetListing - a current listing, fails if absent
func (c *Contract) GetListing(seller account.Account, tok token.Id) (listing.Listing, error) {
	return c.store.Get(listing.Key{Seller: seller, Token: tok})
}

// ListingExists - true if the seller has listed the token
func (c *Contract) ListingExists(seller account.Account, tok token.Id) bool {
	return c.store.Exists(listing.Key{Seller: seller, Token: tok})
}

// GetCollectedCommission - commission taken since the last withdrawal
func (c *Contract) GetCollectedCommission() (uint64, error) {
	s, err := c.Info()
	if nil != err {
		return 0, err
	}
	return s.Commission, nil
}

// GetAdmin - the account allowed to withdraw commission
func (c *Contract) GetAdmin() (account.Account, error) {
	s, err := c.Info()
	if nil != err {
		return account.Account{}, err
	}
	return s.Admin, nil
}

// GetCustodian - the account that holds listed tokens and payments
func (c *Contract) GetCustodian() (account.Account, error) {
	s, err := c.Info()
	if nil != err {
		return account.Account{}, err
	}
	return s.Custodian, nil
}
