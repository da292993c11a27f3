// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/bitmark-inc/escrowd/account"
	"github.com/bitmark-inc/escrowd/rpc/auth"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
	now     func() time.Time

	// filled by the first call that needs it
	custodian account.Account
}

// NewClient - create a RPC connection to an escrowd
func NewClient(connect string, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	return newClient(conn, verbose, handle), nil
}

func newClient(conn net.Conn, verbose bool, handle io.Writer) *Client {
	return &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
		now:     time.Now,
	}
}

// Close - shutdown the escrowd connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

// sign the arguments for the key pair and perform the call
func (c *Client) signedCall(method string, arguments auth.Authenticated, keyPair *account.KeyPair, reply interface{}) error {
	err := auth.Sign(method, arguments, keyPair, c.now())
	if nil != err {
		return err
	}
	return c.call(method, arguments, reply)
}

func (c *Client) call(method string, arguments interface{}, reply interface{}) error {
	c.printJson(method+" Request", arguments)

	err := c.client.Call(method, arguments, reply)
	if nil != err {
		return err
	}

	c.printJson(method+" Reply", reply)
	return nil
}
