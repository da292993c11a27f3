// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package custody

import (
	"encoding/binary"

	"github.com/bitmark-inc/escrowd/account"
	"github.com/bitmark-inc/escrowd/fault"
	"github.com/bitmark-inc/escrowd/storage"
)

// key of the single record in the custodian pool
var stateKey = []byte("custodian")

// label mixed into the custodian address
const custodianLabel = "escrowd custodian"

const stateLength = account.Length + account.Length + 8

// State - custodian global state
//
// Admin and Custodian are fixed at creation, Commission is the sum of
// commissions taken since the last withdrawal
type State struct {
	Admin      account.Account `json:"admin"`
	Custodian  account.Account `json:"custodian"`
	Commission uint64          `json:"commission"`
}

// CustodianAddress - account that holds deposits for a given admin
//
// nobody holds a private key for it
func CustodianAddress(admin account.Account) account.Account {
	return account.Derive(custodianLabel, admin[:])
}

func (s State) pack() []byte {
	buffer := make([]byte, stateLength)
	copy(buffer, s.Admin[:])
	copy(buffer[account.Length:], s.Custodian[:])
	binary.BigEndian.PutUint64(buffer[2*account.Length:], s.Commission)
	return buffer
}

func unpackState(buffer []byte) (State, error) {
	s := State{}
	if stateLength != len(buffer) {
		return s, fault.RecordValueMalformed
	}
	copy(s.Admin[:], buffer[:account.Length])
	copy(s.Custodian[:], buffer[account.Length:2*account.Length])
	s.Commission = binary.BigEndian.Uint64(buffer[2*account.Length:])
	return s, nil
}

// state as seen by a transaction
func (c *Contract) pendingState(trx storage.Transaction) (State, error) {
	return c.decodeState(trx.Get(c.handles.Custodian, stateKey))
}

func (c *Contract) putState(trx storage.Transaction, s State) {
	trx.Put(c.handles.Custodian, stateKey, s.pack())
}

func (c *Contract) decodeState(buffer []byte) (State, error) {
	if nil == buffer {
		return State{}, fault.NotCreated
	}
	s, err := unpackState(buffer)
	if nil != err {
		c.log.Criticalf("corrupt custodian state: %x  error: %s", buffer, err)
		return State{}, err
	}
	return s, nil
}
