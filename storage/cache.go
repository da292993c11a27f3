// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	cache "github.com/patrickmn/go-cache"
)

// Cache - uncommitted writes of a transaction
type Cache interface {
	Get(string) ([]byte, int)
	Set(int, string, []byte)
	Clear()
}

// cache lookup results
const (
	dbMiss = iota
	dbPut
	dbDelete
)

type dbCache struct {
	cache *cache.Cache
}

type cacheData struct {
	op    int
	value []byte
}

// entries live exactly as long as the transaction so no expiry and
// no janitor goroutine
func newCache() Cache {
	return &dbCache{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// Get - look up a pending write
//
// a pending delete is reported as dbDelete so that the caller does
// not fall through to the committed value
func (c *dbCache) Get(key string) ([]byte, int) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, dbMiss
	}

	data := obj.(cacheData)
	if dbDelete == data.op {
		return nil, dbDelete
	}
	return data.value, dbPut
}

func (c *dbCache) Set(op int, key string, value []byte) {
	cached := cacheData{
		op:    op,
		value: value,
	}
	c.cache.Set(key, cached, cache.NoExpiration)
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}
