// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package auth - caller identity for state changing RPC requests
//
// the signed message is:
//
//   method ++ "\n" ++ JSON(arguments with the signature field empty)
//
// the timestamp is part of the arguments so a signature is only
// accepted within constants.RequestTimeout of the server's clock and
// only once inside that window
package auth

import (
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/escrowd/account"
	"github.com/bitmark-inc/escrowd/constants"
	"github.com/bitmark-inc/escrowd/fault"
)

// Signature - ed25519 signature, hex in JSON
type Signature []byte

// MarshalText - convert to hex
func (s Signature) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(len(s)))
	hex.Encode(buffer, s)
	return buffer, nil
}

// UnmarshalText - convert from hex
func (s *Signature) UnmarshalText(text []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(text)))
	n, err := hex.Decode(buffer, text)
	if nil != err {
		return fault.InvalidSignature
	}
	*s = buffer[:n]
	return nil
}

// Signed - embedded in the arguments of every state changing request
type Signed struct {
	Caller    account.Account `json:"caller"`
	Timestamp int64           `json:"timestamp,string"`
	Signature Signature       `json:"signature,omitempty"`
}

// Header - access to the embedded identity
func (s *Signed) Header() *Signed {
	return s
}

// Authenticated - arguments that carry a Signed header
type Authenticated interface {
	Header() *Signed
}

// Message - the bytes covered by the signature
func Message(method string, arguments Authenticated) ([]byte, error) {
	h := arguments.Header()
	signature := h.Signature
	h.Signature = nil
	defer func() { h.Signature = signature }()

	buffer, err := json.Marshal(arguments)
	if nil != err {
		return nil, err
	}

	message := make([]byte, 0, len(method)+1+len(buffer))
	message = append(message, method...)
	message = append(message, '\n')
	return append(message, buffer...), nil
}

// Sign - fill in the header of the arguments for the key pair's account
func Sign(method string, arguments Authenticated, keyPair *account.KeyPair, now time.Time) error {
	h := arguments.Header()
	h.Caller = keyPair.Account
	h.Timestamp = now.Unix()

	message, err := Message(method, arguments)
	if nil != err {
		return err
	}
	h.Signature = keyPair.Sign(message)
	return nil
}

// Verifier - checks signatures and remembers the recent ones
type Verifier struct {
	seen *cache.Cache
}

// NewVerifier - empty replay cache
func NewVerifier() *Verifier {
	window := 2 * constants.RequestTimeout
	return &Verifier{
		seen: cache.New(window, window),
	}
}

// Verify - return the caller of a correctly signed, fresh request
func (v *Verifier) Verify(method string, arguments Authenticated, now time.Time) (account.Account, error) {
	h := arguments.Header()
	if h.Caller.IsZero() || 0 == len(h.Signature) {
		return account.Account{}, fault.MissingParameters
	}

	requestTime := time.Unix(h.Timestamp, 0)
	if requestTime.Before(now.Add(-constants.RequestTimeout)) || requestTime.After(now.Add(constants.RequestTimeout)) {
		return account.Account{}, fault.InvalidRequestTime
	}

	message, err := Message(method, arguments)
	if nil != err {
		return account.Account{}, err
	}

	err = h.Caller.CheckSignature(message, h.Signature)
	if nil != err {
		return account.Account{}, err
	}

	// Add fails if the key is already present and not expired
	err = v.seen.Add(hex.EncodeToString(h.Signature), struct{}{}, cache.DefaultExpiration)
	if nil != err {
		return account.Account{}, fault.RequestReplayed
	}

	return h.Caller, nil
}
