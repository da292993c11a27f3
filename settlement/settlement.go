// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package settlement - integer arithmetic of a sale and the transfers
// the custodian must issue to complete each operation
//
// nothing here performs I/O
package settlement

import (
	"math/bits"

	"github.com/bitmark-inc/escrowd/constants"
	"github.com/bitmark-inc/escrowd/fault"
	"github.com/bitmark-inc/escrowd/listing"
)

// Commission - custodian share of a sale, truncated
func Commission(price uint64) uint64 {
	hi, lo := bits.Mul64(price, constants.CommissionNumerator)
	q, _ := bits.Div64(hi, lo, constants.CommissionDenominator)
	return q
}

// SellerProceeds - amount paid to the seller for a sale, excluding
// the rent refund
func SellerProceeds(price uint64) uint64 {
	return price - Commission(price)
}

// CostModel - per-record storage charge of the host
type CostModel struct {
	Base    uint64 `gluamapper:"base" json:"base"`
	PerByte uint64 `gluamapper:"per_byte" json:"per_byte"`
}

// DefaultCostModel - charge of the reference deployment
var DefaultCostModel = CostModel{
	Base:    constants.StorageCostBase,
	PerByte: constants.StorageCostPerByte,
}

// StorageCost - minimum balance the host requires for one record
func (m CostModel) StorageCost(keyLength int, valueLength int) uint64 {
	return m.Base + uint64(keyLength+valueLength)*m.PerByte
}

// CheckRent - the rent taken for a listing must equal the storage
// cost of one listing record
func CheckRent(m CostModel, rent uint64) error {
	if m.StorageCost(listing.KeyLength, listing.ValueLength) != rent {
		return fault.RentMismatch
	}
	return nil
}
