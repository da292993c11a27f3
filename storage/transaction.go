// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/escrowd/fault"
	"github.com/bitmark-inc/logger"
)

// Transaction - batch of writes applied atomically on Commit
//
// reads through a transaction see its own pending writes
type Transaction interface {
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	InUse() bool
	Commit() error
	Abort()
}

type transaction struct {
	sync.Mutex
	writer sync.Mutex // held from NewDBTransaction until Commit/Abort
	held   bool
	inUse  bool
	db     *leveldb.DB
	batch  *leveldb.Batch
	cache  Cache
}

func newTransaction(db *leveldb.DB) *transaction {
	return &transaction{
		db:    db,
		batch: new(leveldb.Batch),
		cache: newCache(),
	}
}

// Begin - mark the transaction as started
func (t *transaction) Begin() error {
	return t.begin(false)
}

// held is true when the caller owns the writer lock
func (t *transaction) begin(held bool) error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.TransactionAlreadyInUse
	}
	t.inUse = true
	t.held = held
	t.batch.Reset()
	t.cache.Clear()
	return nil
}

// InUse - true between Begin and Commit/Abort
func (t *transaction) InUse() bool {
	t.Lock()
	defer t.Unlock()
	return t.inUse
}

// Put - queue a key/value write
func (t *transaction) Put(p *PoolHandle, key []byte, value []byte) {
	t.Lock()
	defer t.Unlock()
	t.mustBeInUse("Put")

	pk := p.prefixKey(key)
	stored := make([]byte, len(value))
	copy(stored, value)

	t.batch.Put(pk, stored)
	t.cache.Set(dbPut, string(pk), stored)
}

// PutN - queue a big endian uint64 write
func (t *transaction) PutN(p *PoolHandle, key []byte, value uint64) {
	t.Put(p, key, encodeN(value))
}

// Delete - queue a key removal
func (t *transaction) Delete(p *PoolHandle, key []byte) {
	t.Lock()
	defer t.Unlock()
	t.mustBeInUse("Delete")

	pk := p.prefixKey(key)
	t.batch.Delete(pk)
	t.cache.Set(dbDelete, string(pk), nil)
}

// Get - read a value, pending writes take precedence
func (t *transaction) Get(p *PoolHandle, key []byte) []byte {
	t.Lock()
	defer t.Unlock()

	pk := p.prefixKey(key)
	value, op := t.cache.Get(string(pk))
	switch op {
	case dbPut:
		return value
	case dbDelete:
		return nil
	}

	value, err := t.db.Get(pk, nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("transaction.Get", err)
	return value
}

// GetN - read a big endian uint64
func (t *transaction) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	return decodeN(key, t.Get(p, key))
}

// Has - check a key exists, pending writes take precedence
func (t *transaction) Has(p *PoolHandle, key []byte) bool {
	t.Lock()
	defer t.Unlock()

	pk := p.prefixKey(key)
	_, op := t.cache.Get(string(pk))
	switch op {
	case dbPut:
		return true
	case dbDelete:
		return false
	}

	found, err := t.db.Has(pk, nil)
	logger.PanicIfError("transaction.Has", err)
	return found
}

// Commit - write all pending changes in a single batch
func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.TransactionNotInUse
	}

	err := t.db.Write(t.batch, nil)
	t.finish()
	return err
}

// Abort - discard all pending changes
func (t *transaction) Abort() {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return
	}
	t.finish()
}

// must hold t.Mutex
func (t *transaction) finish() {
	t.batch.Reset()
	t.cache.Clear()
	t.inUse = false
	if t.held {
		t.held = false
		t.writer.Unlock()
	}
}

func (t *transaction) mustBeInUse(operation string) {
	if !t.inUse {
		logger.Panicf("transaction.%s: %s", operation, fault.TransactionNotInUse)
	}
}
