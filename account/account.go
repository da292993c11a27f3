// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/escrowd/fault"
)

// miscellaneous constants
const (
	// Length - bytes in an account identifier, the ed25519 public key
	Length = ed25519.PublicKeySize

	checksumLength = 4

	// key variant byte: algorithm in the high nibble, public key flag in LSB
	ed25519Variant = 0x01<<4 | 0x01
)

// Account - an account identifier
//
// fixed width so that it can be used directly as a map key and
// concatenated into storage keys
type Account [Length]byte

// FromBytes - convert a 32 byte public key into an account
func FromBytes(buffer []byte) (Account, error) {
	a := Account{}
	if Length != len(buffer) {
		return a, fault.InvalidKeyLength
	}
	copy(a[:], buffer)
	return a, nil
}

// FromBase58 - decode the text form: variant ++ public key ++ checksum
func FromBase58(s string) (Account, error) {
	a := Account{}

	decoded, err := base58.Decode(s)
	if nil != err || 0 == len(decoded) {
		return a, fault.InvalidAccount
	}

	if 1+Length+checksumLength != len(decoded) {
		return a, fault.InvalidKeyLength
	}
	if ed25519Variant != decoded[0] {
		return a, fault.InvalidAccount
	}

	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return a, fault.InvalidAccount
	}

	copy(a[:], decoded[1:checksumStart])
	return a, nil
}

// Derive - an account that nobody holds a private key for, computed
// from a label and some identifying data
func Derive(label string, data ...[]byte) Account {
	h := sha3.New256()
	h.Write([]byte(label))
	for _, d := range data {
		h.Write(d)
	}
	a := Account{}
	copy(a[:], h.Sum(nil))
	return a
}

// Bytes - the raw public key
func (a Account) Bytes() []byte {
	return a[:]
}

// IsZero - true for the uninitialised account
func (a Account) IsZero() bool {
	return Account{} == a
}

// String - base58 text form
func (a Account) String() string {
	buffer := make([]byte, 0, 1+Length+checksumLength)
	buffer = append(buffer, ed25519Variant)
	buffer = append(buffer, a[:]...)
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - convert an account to its base58 text
func (a Account) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert base58 text to an account
func (a *Account) UnmarshalText(s []byte) error {
	acc, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*a = acc
	return nil
}

// CheckSignature - verify an ed25519 signature made by this account
func (a Account) CheckSignature(message []byte, signature []byte) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.InvalidSignature
	}
	if !ed25519.Verify(ed25519.PublicKey(a[:]), message, signature) {
		return fault.InvalidSignature
	}
	return nil
}
