// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"
	"encoding/json"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/escrowd/account"
	"github.com/bitmark-inc/escrowd/chain"
	"github.com/bitmark-inc/escrowd/fault"
	"github.com/bitmark-inc/escrowd/storage"
	"github.com/bitmark-inc/escrowd/token"
)

// key of the next token id in the TokenCount pool
var nextTokenKey = []byte("next")

// first token id allocated
const firstToken = 1

// Store - ledger held in the local database
type Store struct {
	chain string
	log   *logger.L
}

// make sure the store satisfies the interfaces
var _ Assets = &Store{}
var _ Payments = &Store{}

// NewStore - ledger for the given chain
func NewStore(chainName string) *Store {
	return &Store{
		chain: chainName,
		log:   logger.New("ledger"),
	}
}

// Update - run f in a new storage transaction, commit only if it
// succeeds
func (s *Store) Update(operation string, f func(trx storage.Transaction) error) error {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	err = f(trx)
	if nil != err {
		trx.Abort()
		s.log.Debugf("%s rejected: %s", operation, err)
		return err
	}
	return trx.Commit()
}

// token registry record: creator ++ JSON metadata
type tokenRecord struct {
	creator  account.Account
	metadata token.Metadata
}

func packToken(r tokenRecord) []byte {
	meta, err := json.Marshal(r.metadata)
	logger.PanicIfError("ledger.packToken", err)

	buffer := make([]byte, 0, account.Length+len(meta))
	buffer = append(buffer, r.creator[:]...)
	return append(buffer, meta...)
}

func unpackToken(buffer []byte) (tokenRecord, error) {
	r := tokenRecord{}
	if len(buffer) < account.Length {
		return r, fault.RecordValueMalformed
	}
	copy(r.creator[:], buffer[:account.Length])
	err := json.Unmarshal(buffer[account.Length:], &r.metadata)
	if nil != err {
		return r, fault.RecordValueMalformed
	}
	return r, nil
}

func holdingKey(holder account.Account, tok token.Id) []byte {
	buffer := make([]byte, 0, account.Length+token.Length)
	buffer = append(buffer, holder[:]...)
	return append(buffer, tok.Bytes()...)
}

// CreateToken - create a unique token, supply 1, held by its creator
func (s *Store) CreateToken(trx storage.Transaction, creator account.Account, metadata token.Metadata) (token.Id, error) {
	next, found := trx.GetN(storage.Pool.TokenCount, nextTokenKey)
	if !found {
		next = firstToken
	}
	tok := token.Id(next)

	trx.Put(storage.Pool.Tokens, tok.Bytes(), packToken(tokenRecord{
		creator:  creator,
		metadata: metadata,
	}))
	trx.PutN(storage.Pool.Holdings, holdingKey(creator, tok), 1)
	trx.PutN(storage.Pool.TokenCount, nextTokenKey, next+1)

	s.log.Infof("create token: %s  creator: %s  name: %q", tok, creator, metadata.Name)
	return tok, nil
}

// RegisterHolder - allow an account to hold a token
func (s *Store) RegisterHolder(trx storage.Transaction, holder account.Account, tok token.Id) error {
	if !trx.Has(storage.Pool.Tokens, tok.Bytes()) {
		return fault.TokenNotFound
	}
	key := holdingKey(holder, tok)
	if trx.Has(storage.Pool.Holdings, key) {
		s.log.Debugf("already registered: %s  token: %s", holder, tok)
		return nil
	}
	trx.PutN(storage.Pool.Holdings, key, 0)
	s.log.Debugf("register: %s  token: %s", holder, tok)
	return nil
}

// TransferAsset - move units of a token between registered holders
func (s *Store) TransferAsset(trx storage.Transaction, tok token.Id, from account.Account, to account.Account, amount uint64) error {
	if !trx.Has(storage.Pool.Tokens, tok.Bytes()) {
		return fault.TokenNotFound
	}

	fromKey := holdingKey(from, tok)
	toKey := holdingKey(to, tok)

	fromBalance, _ := trx.GetN(storage.Pool.Holdings, fromKey)
	if fromBalance < amount {
		return fault.AssetNotHeld
	}
	toBalance, registered := trx.GetN(storage.Pool.Holdings, toKey)
	if !registered {
		return fault.ReceiverNotRegistered
	}
	if from == to || 0 == amount {
		return nil
	}

	trx.PutN(storage.Pool.Holdings, fromKey, fromBalance-amount)
	trx.PutN(storage.Pool.Holdings, toKey, toBalance+amount)

	s.log.Debugf("transfer token: %s x%d  from: %s  to: %s", tok, amount, from, to)
	return nil
}

// Pay - move payment units between accounts
func (s *Store) Pay(trx storage.Transaction, from account.Account, to account.Account, amount uint64) error {
	fromBalance, _ := trx.GetN(storage.Pool.Balances, from[:])
	if fromBalance < amount {
		return fault.InsufficientFunds
	}
	if from == to || 0 == amount {
		return nil
	}

	toBalance, _ := trx.GetN(storage.Pool.Balances, to[:])
	if toBalance+amount < toBalance {
		return fault.AmountOverflow
	}

	trx.PutN(storage.Pool.Balances, from[:], fromBalance-amount)
	trx.PutN(storage.Pool.Balances, to[:], toBalance+amount)

	s.log.Debugf("pay: %d  from: %s  to: %s", amount, from, to)
	return nil
}

// Fund - create payment units from nothing, local chain only
func (s *Store) Fund(trx storage.Transaction, to account.Account, amount uint64) error {
	if !chain.CanMint(s.chain) {
		return fault.NotAvailableOnThisChain
	}
	balance, _ := trx.GetN(storage.Pool.Balances, to[:])
	if balance+amount < balance {
		return fault.AmountOverflow
	}
	trx.PutN(storage.Pool.Balances, to[:], balance+amount)

	s.log.Infof("fund: %d  to: %s", amount, to)
	return nil
}

// Balance - committed payment balance
func (s *Store) Balance(owner account.Account) uint64 {
	n, _ := storage.Pool.Balances.GetN(owner[:])
	return n
}

// AssetBalance - committed token balance, false if not registered
func (s *Store) AssetBalance(holder account.Account, tok token.Id) (uint64, bool) {
	return storage.Pool.Holdings.GetN(holdingKey(holder, tok))
}

// Metadata - creator and descriptive data of a token
func (s *Store) Metadata(tok token.Id) (account.Account, token.Metadata, error) {
	buffer := storage.Pool.Tokens.Get(tok.Bytes())
	if nil == buffer {
		return account.Account{}, token.Metadata{}, fault.TokenNotFound
	}
	r, err := unpackToken(buffer)
	if nil != err {
		s.log.Criticalf("corrupt token: %s  error: %s", tok, err)
		return account.Account{}, token.Metadata{}, err
	}
	return r.creator, r.metadata, nil
}

// Holdings - every token an account is registered for, including
// zero balances
func (s *Store) Holdings(holder account.Account) ([]Holding, error) {
	holdings := make([]Holding, 0, 16)
	cursor := storage.Pool.Holdings.NewFetchCursor().Prefix(holder[:])
	err := cursor.Map(func(key []byte, value []byte) error {
		if account.Length+token.Length != len(key) || len(value) < 8 {
			s.log.Criticalf("corrupt holding: %x", key)
			return fault.RecordKeyMalformed
		}
		tok, err := token.FromBytes(key[account.Length:])
		if nil != err {
			return err
		}
		holdings = append(holdings, Holding{
			Token:  tok,
			Amount: binary.BigEndian.Uint64(value[:8]),
		})
		return nil
	})
	if nil != err {
		return nil, err
	}
	return holdings, nil
}
