// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/escrowd/account"
	"github.com/bitmark-inc/escrowd/currency"
)

type custodianResult struct {
	Admin      account.Account `json:"admin"`
	Custodian  account.Account `json:"custodian"`
	Commission string          `json:"commission"`
}

func runEscrowdInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.NodeInfo()
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	admin, err := checkOwnerWithPassword(c, m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.CreateCustodian(admin)
	if nil != err {
		return err
	}

	printJson(m.w, custodianResult{
		Admin:      response.Admin,
		Custodian:  response.Custodian,
		Commission: currency.FormatAmount(response.Commission),
	})
	return nil
}

func runCustodian(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.CustodianInfo()
	if nil != err {
		return err
	}

	printJson(m.w, custodianResult{
		Admin:      response.Admin,
		Custodian:  response.Custodian,
		Commission: currency.FormatAmount(response.Commission),
	})
	return nil
}

func runWithdraw(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	admin, err := checkOwnerWithPassword(c, m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Withdraw(admin)
	if nil != err {
		return err
	}

	printJson(m.w, balanceResult{
		Owner:  admin.Account,
		Amount: currency.FormatAmount(response.Amount),
	})
	return nil
}
