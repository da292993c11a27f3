// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/bitmark-inc/escrowd/account"
	"github.com/bitmark-inc/escrowd/chain"
	"github.com/bitmark-inc/escrowd/command/escrow-cli/configuration"
	"github.com/bitmark-inc/escrowd/currency"
	"github.com/bitmark-inc/escrowd/fault"
	"github.com/bitmark-inc/escrowd/token"
	"github.com/bitmark-inc/escrowd/util"
)

// command line errors - keep in alphabetic order
var (
	ErrRequiredAmount      = fault.InvalidError("amount is required")
	ErrRequiredConnect     = fault.InvalidError("connect is required")
	ErrRequiredDescription = fault.InvalidError("description is required")
	ErrRequiredIdentity    = fault.InvalidError("identity is required")
	ErrRequiredName        = fault.InvalidError("token name is required")
	ErrRequiredPrice       = fault.InvalidError("price is required")
	ErrRequiredReceiver    = fault.InvalidError("receiver is required")
	ErrRequiredSeller      = fault.InvalidError("seller is required")
	ErrRequiredToken       = fault.InvalidError("token is required")
)

// chain must be one of the known names, with the same aliases as escrowd
func checkChain(name string) (string, error) {
	switch strings.ToLower(name) {
	case chain.Live, "bitmark", "production":
		return chain.Live, nil
	case chain.Testing, "test":
		return chain.Testing, nil
	case chain.Local, "regression":
		return chain.Local, nil
	default:
		return "", fault.InvalidChain
	}
}

// identity is required, but not check the config file
func checkName(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredIdentity
	}

	return name, nil
}

// connect is required, as a canonical host:port
func checkConnect(connect string) (string, error) {
	if "" == connect {
		return "", ErrRequiredConnect
	}

	return util.CanonicalIPandPort(connect)
}

// description is required
func checkDescription(description string) (string, error) {
	if "" == description {
		return "", ErrRequiredDescription
	}

	return description, nil
}

// seed is optional, a new key pair is generated if blank
func checkSeed(seed string) (*account.KeyPair, error) {
	if "" == seed {
		return account.NewKeyPair()
	}
	return account.KeyPairFromBase58Seed(strings.TrimSpace(seed))
}

// token id is required decimal
func checkToken(s string) (token.Id, error) {
	if "" == s {
		return 0, ErrRequiredToken
	}
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if nil != err || 0 == n {
		return 0, fault.InvalidTokenId
	}
	return token.Id(n), nil
}

// amount in whole units, converted to minimum units
func checkAmount(s string, missing error) (uint64, error) {
	if "" == s {
		return 0, missing
	}
	n, err := currency.ParseAmount(s)
	if nil != err {
		return 0, err
	}
	if 0 == n {
		return 0, fault.InvalidAmount
	}
	return n, nil
}

// an identity name from the configuration or a base58 account
func checkAccount(s string, config *configuration.Configuration, missing error) (account.Account, error) {
	if "" == s {
		return account.Account{}, missing
	}
	if a, err := config.Account(s); nil == err {
		return a, nil
	}
	return account.FromBase58(s)
}

// the file must exist, returns true if it is a directory
func checkFileExists(name string) (bool, error) {
	s, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return s.IsDir(), nil
}
