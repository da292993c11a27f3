// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listing

import (
	"encoding/binary"

	"github.com/bitmark-inc/escrowd/account"
	"github.com/bitmark-inc/escrowd/fault"
	"github.com/bitmark-inc/escrowd/token"
)

// record layout
const (
	KeyPrefix   = 'l'
	KeyLength   = 1 + account.Length + token.Length
	ValueLength = account.Length + 8 + 1
)

// Key - one record per seller and token
type Key struct {
	Seller account.Account
	Token  token.Id
}

// Listing - a seller's offer of one unit of a token at a fixed price
type Listing struct {
	Seller account.Account `json:"seller"`
	Price  uint64          `json:"price"`
	Active bool            `json:"active"`
}

// Bytes - the key without its prefix: seller ++ token id
func (k Key) Bytes() []byte {
	buffer := make([]byte, 0, KeyLength-1)
	buffer = append(buffer, k.Seller[:]...)
	return append(buffer, k.Token.Bytes()...)
}

// Record - the full stored key including its prefix
func (k Key) Record() []byte {
	buffer := make([]byte, 1, KeyLength)
	buffer[0] = KeyPrefix
	return append(buffer, k.Bytes()...)
}

// ParseKey - decode a full stored key
func ParseKey(record []byte) (Key, error) {
	if KeyLength != len(record) || KeyPrefix != record[0] {
		return Key{}, fault.RecordKeyMalformed
	}
	return parseKeyBytes(record[1:])
}

// decode seller ++ token id
func parseKeyBytes(buffer []byte) (Key, error) {
	if KeyLength-1 != len(buffer) {
		return Key{}, fault.RecordKeyMalformed
	}
	k := Key{}
	copy(k.Seller[:], buffer[:account.Length])
	k.Token = token.Id(binary.BigEndian.Uint64(buffer[account.Length:]))
	return k, nil
}

// Pack - encode the stored value
func (l Listing) Pack() []byte {
	buffer := make([]byte, ValueLength)
	copy(buffer, l.Seller[:])
	binary.BigEndian.PutUint64(buffer[account.Length:], l.Price)
	if l.Active {
		buffer[ValueLength-1] = 1
	}
	return buffer
}

// Unpack - decode a stored value
func Unpack(buffer []byte) (Listing, error) {
	if ValueLength != len(buffer) {
		return Listing{}, fault.RecordValueMalformed
	}
	l := Listing{
		Price:  binary.BigEndian.Uint64(buffer[account.Length:]),
		Active: 0 != buffer[ValueLength-1],
	}
	copy(l.Seller[:], buffer[:account.Length])
	return l, nil
}

// ParseRecord - decode and cross check a raw key/value pair as read
// from the store by an external scanner
func ParseRecord(rawKey []byte, rawValue []byte) (Key, Listing, error) {
	k, err := ParseKey(rawKey)
	if nil != err {
		return Key{}, Listing{}, err
	}
	l, err := Unpack(rawValue)
	if nil != err {
		return Key{}, Listing{}, err
	}
	if k.Seller != l.Seller {
		return Key{}, Listing{}, fault.RecordSellerMismatch
	}
	return k, l, nil
}
