// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package constants

import (
	"time"
)

// commission taken by the custodian on each sale: 25/1000 = 2.5%
const (
	CommissionNumerator   = 25
	CommissionDenominator = 1000
)

// Rent - minimum units paid on listing and refunded when the listing
// record is removed
//
// must equal the storage cost of one listing record, see
// settlement.CheckRent
const (
	Rent = 35300
)

// RegistrationCost - minimum payment that must accompany a request for
// the custodian to register as a holder of a token
const (
	RegistrationCost = 100000
)

// per-record storage cost charged by the reference host:
//   base + (key bytes + value bytes) * per byte
const (
	StorageCostBase    = 2500
	StorageCostPerByte = 400
)

// RequestTimeout - signed requests older than this are rejected
const (
	RequestTimeout = 5 * time.Minute
)
