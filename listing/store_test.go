// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/escrowd/fault"
	"github.com/bitmark-inc/escrowd/listing"
	"github.com/bitmark-inc/escrowd/storage"
)

func TestPoolPrefixMatchesRecordLayout(t *testing.T) {
	setupTestStorage(t)
	defer teardownTestStorage()

	assert.Equal(t, byte(listing.KeyPrefix), storage.Pool.Listings.Prefix(), "listings pool prefix")
}

func TestStorePutGetDelete(t *testing.T) {
	setupTestStorage(t)
	defer teardownTestStorage()

	store := listing.NewStore(storage.Pool.Listings)
	k := listing.Key{Seller: seller, Token: 12}
	l := listing.Listing{Seller: seller, Price: 500, Active: true}

	_, err := store.Get(k)
	assert.Equal(t, fault.ListingNotFound, err, "absent listing")
	assert.False(t, store.Exists(k), "absent listing exists")

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin error")
	store.Put(trx, k, l)

	assert.True(t, store.ExistsPending(trx, k), "pending put not visible")
	pending, err := store.GetPending(trx, k)
	assert.Nil(t, err, "pending get error")
	assert.Equal(t, l, pending, "pending listing")
	assert.False(t, store.Exists(k), "uncommitted listing visible")

	err = trx.Commit()
	assert.Nil(t, err, "commit error")

	actual, err := store.Get(k)
	assert.Nil(t, err, "get error")
	assert.Equal(t, l, actual, "stored listing")

	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err, "begin error")
	store.Delete(trx, k)
	assert.False(t, store.ExistsPending(trx, k), "pending delete not visible")
	_, err = store.GetPending(trx, k)
	assert.Equal(t, fault.ListingNotFound, err, "pending delete get")
	err = trx.Commit()
	assert.Nil(t, err, "commit error")

	assert.False(t, store.Exists(k), "deleted listing exists")
}

func TestStoreRejectsCorruptRecord(t *testing.T) {
	setupTestStorage(t)
	defer teardownTestStorage()

	store := listing.NewStore(storage.Pool.Listings)
	k := listing.Key{Seller: seller, Token: 3}

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin error")
	trx.Put(storage.Pool.Listings, k.Bytes(), listing.Listing{Seller: otherSeller, Price: 1, Active: true}.Pack())
	err = trx.Commit()
	assert.Nil(t, err, "commit error")

	_, err = store.Get(k)
	assert.Equal(t, fault.RecordSellerMismatch, err, "seller mismatch")
}

func TestStoreScan(t *testing.T) {
	setupTestStorage(t)
	defer teardownTestStorage()

	store := listing.NewStore(storage.Pool.Listings)

	expected := map[listing.Key]listing.Listing{
		{Seller: seller, Token: 1}:      {Seller: seller, Price: 10, Active: true},
		{Seller: seller, Token: 2}:      {Seller: seller, Price: 20, Active: true},
		{Seller: otherSeller, Token: 1}: {Seller: otherSeller, Price: 30, Active: false},
	}

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin error")
	for k, l := range expected {
		store.Put(trx, k, l)
	}

	// malformed record must be skipped by ScanAll
	trx.Put(storage.Pool.Listings, []byte{1, 2, 3}, []byte{4})
	err = trx.Commit()
	assert.Nil(t, err, "commit error")

	actual := map[listing.Key]listing.Listing{}
	err = store.ScanAll(func(k listing.Key, l listing.Listing) error {
		actual[k] = l
		return nil
	})
	assert.Nil(t, err, "scan error")
	assert.Equal(t, expected, actual, "scanned listings")

	raw := 0
	err = store.ScanRecords(func(rawKey []byte, rawValue []byte) error {
		assert.Equal(t, byte('l'), rawKey[0], "raw key prefix")
		raw += 1
		return nil
	})
	assert.Nil(t, err, "raw scan error")
	assert.Equal(t, 4, raw, "raw record count")
}
