// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listing

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/escrowd/fault"
	"github.com/bitmark-inc/escrowd/storage"
)

// Store - listing records held in a storage pool
type Store struct {
	pool *storage.PoolHandle
	log  *logger.L
}

// NewStore - wrap the listings pool
func NewStore(pool *storage.PoolHandle) *Store {
	return &Store{
		pool: pool,
		log:  logger.New("listing"),
	}
}

// Get - read a committed listing
func (s *Store) Get(key Key) (Listing, error) {
	return s.decode(key, s.pool.Get(key.Bytes()))
}

// Exists - true if a committed listing is present
func (s *Store) Exists(key Key) bool {
	return s.pool.Has(key.Bytes())
}

// GetPending - read a listing as seen by a transaction
func (s *Store) GetPending(trx storage.Transaction, key Key) (Listing, error) {
	return s.decode(key, trx.Get(s.pool, key.Bytes()))
}

// ExistsPending - true if the listing is present as seen by a transaction
func (s *Store) ExistsPending(trx storage.Transaction, key Key) bool {
	return trx.Has(s.pool, key.Bytes())
}

// Put - write a listing in a transaction
func (s *Store) Put(trx storage.Transaction, key Key, l Listing) {
	trx.Put(s.pool, key.Bytes(), l.Pack())
}

// Delete - remove a listing in a transaction
func (s *Store) Delete(trx storage.Transaction, key Key) {
	trx.Delete(s.pool, key.Bytes())
}

// ScanAll - run f on every well formed committed listing
//
// malformed records are logged and skipped, iteration stops at the
// first error from f
func (s *Store) ScanAll(f func(Key, Listing) error) error {
	return s.ScanRecords(func(rawKey []byte, rawValue []byte) error {
		k, l, err := ParseRecord(rawKey, rawValue)
		if nil != err {
			s.log.Warnf("skip record: %x  error: %s", rawKey, err)
			return nil
		}
		return f(k, l)
	})
}

// ScanRecords - run f on the raw full key and value of every
// committed record, exactly as an external reader would see them
func (s *Store) ScanRecords(f func(rawKey []byte, rawValue []byte) error) error {
	cursor := s.pool.NewFetchCursor()
	return cursor.Map(func(key []byte, value []byte) error {
		rawKey := make([]byte, 1, len(key)+1)
		rawKey[0] = s.pool.Prefix()
		return f(append(rawKey, key...), value)
	})
}

func (s *Store) decode(key Key, buffer []byte) (Listing, error) {
	if nil == buffer {
		return Listing{}, fault.ListingNotFound
	}
	l, err := Unpack(buffer)
	if nil != err {
		s.log.Criticalf("corrupt listing: %x  error: %s", key.Record(), err)
		return Listing{}, err
	}
	if l.Seller != key.Seller {
		s.log.Criticalf("corrupt listing: %x  error: %s", key.Record(), fault.RecordSellerMismatch)
		return Listing{}, fault.RecordSellerMismatch
	}
	return l, nil
}
