// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"encoding/binary"
	"strconv"

	"github.com/bitmark-inc/escrowd/fault"
)

// Length - bytes in the wire form of an identifier
const Length = 8

// Id - identifier of a unique token on the asset ledger
type Id uint64

// FromBytes - decode a big endian identifier
func FromBytes(buffer []byte) (Id, error) {
	if Length != len(buffer) {
		return 0, fault.InvalidTokenId
	}
	return Id(binary.BigEndian.Uint64(buffer)), nil
}

// Bytes - big endian fixed width form used in storage keys
func (id Id) Bytes() []byte {
	buffer := make([]byte, Length)
	binary.BigEndian.PutUint64(buffer, uint64(id))
	return buffer
}

// String - decimal form
func (id Id) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Metadata - descriptive data attached at creation
type Metadata struct {
	Name     string `json:"name"`
	UnitName string `json:"unitName"`
	URL      string `json:"url"`
}
