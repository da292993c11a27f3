// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/escrowd/token"
)

func runMint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name := c.String("name")
	if "" == name {
		return ErrRequiredName
	}

	creator, err := checkOwnerWithPassword(c, m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Mint(creator, token.Metadata{
		Name:     name,
		UnitName: c.String("unit-name"),
		URL:      c.String("url"),
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runOptIn(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tok, err := checkToken(c.String("token"))
	if nil != err {
		return err
	}

	holder, err := checkOwnerWithPassword(c, m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.OptIn(holder, tok)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tok, err := checkToken(c.String("token"))
	if nil != err {
		return err
	}

	receiver, err := checkAccount(c.String("receiver"), m.config, ErrRequiredReceiver)
	if nil != err {
		return err
	}

	owner, err := checkOwnerWithPassword(c, m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.TransferToken(owner, receiver, tok, c.Uint64("amount"))
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runHoldings(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkOwnerAccount(c, m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Holdings(owner)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
