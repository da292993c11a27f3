// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listing - records of tokens offered for sale by the custodian
//
// A record is stored under a 41 byte key and carries a 41 byte value:
//
//   key:   'l' ++ seller(32) ++ token id(8, big endian)
//   value: seller(32) ++ price(8, big endian) ++ active(1, non-zero = true)
//
// This layout is read directly by external scanners so it must not
// change.  The seller in the value must always equal the seller in
// the key.
package listing
