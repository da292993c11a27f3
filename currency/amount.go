// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package currency - conversion between minimum payment units and the
// whole units shown to people
package currency

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/escrowd/fault"
)

// Decimals - minimum units per whole unit is 10^Decimals
const Decimals = 6

// ParseAmount - convert whole units text e.g. "1.5" to minimum units
func ParseAmount(s string) (uint64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if nil != err {
		return 0, fault.InvalidAmount
	}
	if d.Sign() < 0 {
		return 0, fault.InvalidAmount
	}

	units := d.Shift(Decimals)
	if !units.Equal(units.Truncate(0)) {
		return 0, fault.InvalidAmount
	}

	n := units.BigInt()
	if !n.IsUint64() {
		return 0, fault.InvalidAmount
	}
	return n.Uint64(), nil
}

// FormatAmount - convert minimum units to whole units text
func FormatAmount(units uint64) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(units), -Decimals).StringFixed(Decimals)
}
