// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/escrowd/fault"
	"github.com/bitmark-inc/escrowd/storage"
)

func TestCursorFetch(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	putElements(t, p, expectedElements)

	// records in another pool must not appear
	putElements(t, storage.Pool.Balances, expectedElements[:2])

	cursor := p.NewFetchCursor()

	data, err := cursor.Fetch(2)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, expectedElements[:2], data, "first page")

	data, err = cursor.Fetch(2)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, expectedElements[2:4], data, "second page")

	data, err = cursor.Fetch(10)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, expectedElements[4:], data, "last page")

	data, err = cursor.Fetch(10)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 0, len(data), "past end")

	_, err = cursor.Fetch(0)
	assert.Equal(t, fault.InvalidCount, err, "zero count")
}

func TestCursorMapPrefix(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	putElements(t, p, expectedElements)

	actual := []storage.Element{}
	err := p.NewFetchCursor().Prefix([]byte("other-")).Map(func(key []byte, value []byte) error {
		actual = append(actual, storage.Element{Key: key, Value: value})
		return nil
	})
	assert.Nil(t, err, "map error")
	assert.Equal(t, expectedElements[3:], actual, "prefix range")
}

func TestCursorMapStops(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	putElements(t, p, expectedElements)

	n := 0
	err := p.NewFetchCursor().Map(func(key []byte, value []byte) error {
		n += 1
		if 2 == n {
			return fault.InvalidCount
		}
		return nil
	})
	assert.Equal(t, fault.InvalidCount, err, "callback error not returned")
	assert.Equal(t, 2, n, "iteration did not stop")
}

func TestCursorMapCallbackReadsWhileFinalising(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	putElements(t, p, expectedElements)

	n := 0
	err := p.NewFetchCursor().Map(func(key []byte, value []byte) error {
		n += 1
		if 1 != n {
			return nil
		}

		// a pending close must not wait on the running scan
		done := make(chan struct{})
		go func() {
			storage.Finalise()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatalf("finalise blocked by map callback")
		}

		assert.Nil(t, p.Get(key), "read after close")
		return nil
	})
	assert.Nil(t, err, "map error")
	assert.Equal(t, len(expectedElements), n, "all elements visited")
}
