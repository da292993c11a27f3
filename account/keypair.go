// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/escrowd/fault"
)

// seed text: header ++ 32 byte seed ++ 4 byte checksum
var seedHeader = []byte{0x5a, 0xfe, 0x02, 0x00}

const seedLength = ed25519.SeedSize

// KeyPair - signing key for an account
type KeyPair struct {
	Account    Account
	PrivateKey ed25519.PrivateKey
}

// NewKeyPair - create a key pair from secure random data
func NewKeyPair() (*KeyPair, error) {
	seed := make([]byte, seedLength)
	if _, err := rand.Read(seed); nil != err {
		return nil, err
	}
	return KeyPairFromSeed(seed)
}

// KeyPairFromSeed - regenerate a key pair from a raw 32 byte seed
func KeyPairFromSeed(seed []byte) (*KeyPair, error) {
	if seedLength != len(seed) {
		return nil, fault.InvalidKeyLength
	}
	privateKey := ed25519.NewKeyFromSeed(seed)
	a, err := FromBytes(privateKey.Public().(ed25519.PublicKey))
	if nil != err {
		return nil, err
	}
	return &KeyPair{
		Account:    a,
		PrivateKey: privateKey,
	}, nil
}

// KeyPairFromBase58Seed - decode the seed text written by SeedString
func KeyPairFromBase58Seed(s string) (*KeyPair, error) {
	decoded, err := base58.Decode(s)
	if nil != err {
		return nil, fault.InvalidKeyLength
	}
	if len(seedHeader)+seedLength+checksumLength != len(decoded) {
		return nil, fault.InvalidKeyLength
	}
	if !bytes.Equal(seedHeader, decoded[:len(seedHeader)]) {
		return nil, fault.InvalidKeyLength
	}
	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return nil, fault.InvalidSignature
	}
	return KeyPairFromSeed(decoded[len(seedHeader):checksumStart])
}

// SeedString - base58 text of the seed, suitable for a key file
func (k *KeyPair) SeedString() string {
	buffer := append([]byte{}, seedHeader...)
	buffer = append(buffer, k.PrivateKey.Seed()...)
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// Sign - sign a message
func (k *KeyPair) Sign(message []byte) []byte {
	return ed25519.Sign(k.PrivateKey, message)
}
