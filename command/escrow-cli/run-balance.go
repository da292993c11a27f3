// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/escrowd/account"
	"github.com/bitmark-inc/escrowd/currency"
)

type balanceResult struct {
	Owner  account.Account `json:"owner"`
	Amount string          `json:"amount"`
}

func runBalance(c *cli.Context) error {

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

	response, err := client.GetBalance(owner)
	if nil != err {
		return err
	}

	printJson(m.w, balanceResult{
		Owner:  response.Owner,
		Amount: currency.FormatAmount(response.Amount),
	})
	return nil
}

func runFund(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	amount, err := checkAmount(c.String("amount"), ErrRequiredAmount)
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

	response, err := client.Fund(owner, amount)
	if nil != err {
		return err
	}

	printJson(m.w, balanceResult{
		Owner:  response.Owner,
		Amount: currency.FormatAmount(response.Amount),
	})
	return nil
}

func runPay(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	receiver, err := checkAccount(c.String("receiver"), m.config, ErrRequiredReceiver)
	if nil != err {
		return err
	}

	amount, err := checkAmount(c.String("amount"), ErrRequiredAmount)
	if nil != err {
		return err
	}

	owner, err := checkOwnerWithPassword(c, m)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "pay: %s  to: %s  from: %s\n", currency.FormatAmount(amount), receiver, owner.Account)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Pay(owner, receiver, amount)
	if nil != err {
		return err
	}

	printJson(m.w, balanceResult{
		Owner:  response.Owner,
		Amount: currency.FormatAmount(response.Amount),
	})
	return nil
}
