// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/escrowd/account"
	"github.com/bitmark-inc/escrowd/rpc/tokens"
	"github.com/bitmark-inc/escrowd/token"
)

// Mint - create a new token held by the creator
func (c *Client) Mint(creator *account.KeyPair, metadata token.Metadata) (*tokens.CreateReply, error) {
	reply := &tokens.CreateReply{}
	err := c.signedCall("Tokens.Create", &tokens.CreateArguments{Metadata: metadata}, creator, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// OptIn - allow the account to receive a token
func (c *Client) OptIn(holder *account.KeyPair, tok token.Id) (*tokens.StatusReply, error) {
	reply := &tokens.StatusReply{}
	err := c.signedCall("Tokens.OptIn", &tokens.OptInArguments{Token: tok}, holder, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// TransferToken - move token units to another registered holder
func (c *Client) TransferToken(owner *account.KeyPair, receiver account.Account, tok token.Id, amount uint64) (*tokens.StatusReply, error) {
	arguments := &tokens.TransferArguments{
		Receiver: receiver,
		Token:    tok,
		Amount:   amount,
	}
	reply := &tokens.StatusReply{}
	err := c.signedCall("Tokens.Transfer", arguments, owner, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// TokenInfo - creator and metadata of a token
func (c *Client) TokenInfo(tok token.Id) (*tokens.GetReply, error) {
	reply := &tokens.GetReply{}
	err := c.call("Tokens.Get", &tokens.GetArguments{Token: tok}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Holdings - tokens held by an account
func (c *Client) Holdings(owner account.Account) (*tokens.HoldingsReply, error) {
	reply := &tokens.HoldingsReply{}
	err := c.call("Tokens.Holdings", &tokens.HoldingsArguments{Owner: owner}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}
