// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix
// 2. ++       = concatenation of byte data
// 3. token id = big endian uint64 (8 bytes)
// 4. account  = ed25519 public key (32 bytes)
// 5. amount   = big endian uint64 (8 bytes)
//
// Listings (wire contract, read directly by external listing scanners):
//
//   l ++ seller ++ token id   - one active offer
//                               data: seller ++ price(amount) ++ active(1 byte, non-zero = true)
//
// Custodian:
//
//   G ++ "custodian"          - custodian global state
//                               data: admin ++ custodian address ++ collected commission(amount)
//
// Host ledger:
//
//   T ++ token id             - token registry
//                               data: creator ++ packed metadata
//   N ++ "next"               - next token id to allocate
//                               data: token id
//   H ++ account ++ token id  - holder registration and balance (present = registered)
//                               data: amount
//   B ++ account              - payment balance
//                               data: amount
//
// Testing:
//   Z ++ key                  - testing data
package storage
