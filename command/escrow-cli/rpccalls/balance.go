// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/escrowd/account"
	"github.com/bitmark-inc/escrowd/rpc/balance"
)

// GetBalance - payment units held by an account
func (c *Client) GetBalance(owner account.Account) (*balance.Reply, error) {
	reply := &balance.Reply{}
	err := c.call("Balance.Get", &balance.GetArguments{Owner: owner}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Fund - credit the account, local chain only
func (c *Client) Fund(owner *account.KeyPair, amount uint64) (*balance.Reply, error) {
	reply := &balance.Reply{}
	err := c.signedCall("Balance.Fund", &balance.FundArguments{Amount: amount}, owner, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Pay - send payment units to another account
func (c *Client) Pay(owner *account.KeyPair, receiver account.Account, amount uint64) (*balance.Reply, error) {
	arguments := &balance.PayArguments{
		Receiver: receiver,
		Amount:   amount,
	}
	reply := &balance.Reply{}
	err := c.signedCall("Balance.Pay", arguments, owner, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}
