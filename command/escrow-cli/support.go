// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/escrowd/account"
	"github.com/bitmark-inc/escrowd/command/escrow-cli/rpccalls"
)

// the identity selected by --identity, or the default one
func identityName(c *cli.Context, m *metadata) string {
	name := c.GlobalString("identity")
	if "" == name {
		name = m.config.DefaultIdentity
	}
	return name
}

// decrypt the key pair of the selected identity
func checkOwnerWithPassword(c *cli.Context, m *metadata) (*account.KeyPair, error) {
	name, err := checkName(identityName(c, m))
	if nil != err {
		return nil, err
	}

	// fail early for an unknown identity
	if _, err := m.config.Identity(name); nil != err {
		return nil, err
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptPassword()
		if nil != err {
			return nil, err
		}
	}

	private, err := m.config.Private(password, name)
	if nil != err {
		return nil, err
	}
	return private.KeyPair, nil
}

// the --owner account or the selected identity's account
func checkOwnerAccount(c *cli.Context, m *metadata) (account.Account, error) {
	if owner := c.String("owner"); "" != owner {
		return checkAccount(owner, m.config, ErrRequiredIdentity)
	}
	name, err := checkName(identityName(c, m))
	if nil != err {
		return account.Account{}, err
	}
	return m.config.Account(name)
}

func connect(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.config.Connect, m.verbose, m.e)
}
