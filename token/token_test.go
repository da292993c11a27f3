// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/escrowd/fault"
	"github.com/bitmark-inc/escrowd/token"
)

func TestBigEndian(t *testing.T) {
	id := token.Id(0x0102030405060708)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, id.Bytes(), "wrong byte order")

	decoded, err := token.FromBytes(id.Bytes())
	assert.Nil(t, err, "decode")
	assert.Equal(t, id, decoded, "wrong id")

	_, err = token.FromBytes([]byte{1, 2, 3})
	assert.Equal(t, fault.InvalidTokenId, err, "short buffer")

	assert.Equal(t, "1592", token.Id(1592).String(), "decimal text")
}
