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
	"github.com/bitmark-inc/escrowd/index"
	"github.com/bitmark-inc/escrowd/token"
)

type listingResult struct {
	Seller account.Account `json:"seller"`
	Token  token.Id        `json:"token,string"`
	Price  string          `json:"price"`
	Active bool            `json:"active"`
}

type listingsResult struct {
	Next uint64        `json:"next,string"`
	Data []index.Entry `json:"data"`
}

func runRegister(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tok, err := checkToken(c.String("token"))
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

	response, err := client.RegisterHolding(owner, tok)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tok, err := checkToken(c.String("token"))
	if nil != err {
		return err
	}

	price, err := checkAmount(c.String("price"), ErrRequiredPrice)
	if nil != err {
		return err
	}

	seller, err := checkOwnerWithPassword(c, m)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "list token: %s  price: %s  seller: %s\n", tok, currency.FormatAmount(price), seller.Account)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.List(seller, tok, price)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runBuy(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	seller, err := checkAccount(c.String("seller"), m.config, ErrRequiredSeller)
	if nil != err {
		return err
	}

	tok, err := checkToken(c.String("token"))
	if nil != err {
		return err
	}

	// blank pays the listed price
	amount := uint64(0)
	if s := c.String("amount"); "" != s {
		amount, err = checkAmount(s, ErrRequiredAmount)
		if nil != err {
			return err
		}
	}

	buyer, err := checkOwnerWithPassword(c, m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Buy(buyer, seller, tok, amount)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runCancel(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tok, err := checkToken(c.String("token"))
	if nil != err {
		return err
	}

	seller, err := checkOwnerWithPassword(c, m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Cancel(seller, tok)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runUpdatePrice(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tok, err := checkToken(c.String("token"))
	if nil != err {
		return err
	}

	price, err := checkAmount(c.String("price"), ErrRequiredPrice)
	if nil != err {
		return err
	}

	seller, err := checkOwnerWithPassword(c, m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.UpdatePrice(seller, tok, price)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runListing(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	seller, err := checkAccount(c.String("seller"), m.config, ErrRequiredSeller)
	if nil != err {
		return err
	}

	tok, err := checkToken(c.String("token"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetListing(seller, tok)
	if nil != err {
		return err
	}

	printJson(m.w, listingResult{
		Seller: response.Seller,
		Token:  response.Token,
		Price:  currency.FormatAmount(response.Price),
		Active: response.Active,
	})
	return nil
}

func runListings(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.ActiveListings(c.Uint64("start"), c.Int("count"))
	if nil != err {
		return err
	}

	printJson(m.w, listingsResult{
		Next: response.Next,
		Data: response.Data,
	})
	return nil
}
