// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/escrowd/chain"
	"github.com/bitmark-inc/escrowd/constants"
	"github.com/bitmark-inc/escrowd/settlement"
)

func writeConfiguration(t *testing.T, script string) string {
	dir := t.TempDir()
	name := filepath.Join(dir, "escrowd.conf")
	err := ioutil.WriteFile(name, []byte(script), 0600)
	if nil != err {
		t.Fatalf("write configuration error: %s", err)
	}
	return name
}

func TestSampleConfiguration(t *testing.T) {
	sample, err := ioutil.ReadFile("escrowd.conf.sample")
	if nil != err {
		t.Fatalf("read sample error: %s", err)
	}
	name := writeConfiguration(t, string(sample))
	dir := filepath.Dir(name)

	c, err := getConfiguration(name)
	assert.Nil(t, err, "configuration error")

	assert.Equal(t, chain.Local, c.Chain, "chain")
	assert.Equal(t, filepath.Join(dir, "data"), c.Database.Directory, "database directory")
	assert.Equal(t, filepath.Join(dir, "data", "local.leveldb"), c.Database.Name, "database name")
	assert.Equal(t, filepath.Join(dir, "rpc.crt"), c.ClientRPC.Certificate, "certificate")
	assert.Equal(t, filepath.Join(dir, "rpc.key"), c.HttpsRPC.PrivateKey, "https key")
	assert.Equal(t, uint64(50), c.ClientRPC.MaximumConnections, "rpc connections")
	assert.Equal(t, []string{"127.0.0.1:2231"}, c.HttpsRPC.Listen, "https listen")
	assert.Equal(t, []string{"127.0.0.0/8", "::1/128"}, c.HttpsRPC.Allow["details"], "allow")
	assert.Equal(t, "", c.Listings.HoldingsURL, "no holdings service")
	assert.Nil(t, settlement.CheckRent(c.StorageCost, constants.Rent), "sample rent")
}

func TestDefaultsPerChain(t *testing.T) {
	name := writeConfiguration(t, `return { data_directory = ".", chain = "Testing" }`)
	dir := filepath.Dir(name)

	c, err := getConfiguration(name)
	assert.Nil(t, err, "configuration error")

	assert.Equal(t, chain.Testing, c.Chain, "chain is lower cased")
	assert.Equal(t, filepath.Join(dir, "data", "testing.leveldb"), c.Database.Name, "database name")
	assert.Equal(t, settlement.DefaultCostModel, c.StorageCost, "storage cost")
	assert.Equal(t, filepath.Join(dir, "log"), c.Logging.Directory, "log directory")
	assert.Equal(t, "", c.PidFile, "no pid file")
}

func TestInvalidConfiguration(t *testing.T) {
	scripts := []string{
		`return { data_directory = ".", chain = "bitcoin" }`,
		`return { chain = "local" }`,
		`return { data_directory = ".", database = { name = "sub/x.leveldb" } }`,
		`return "not a table"`,
	}
	for i, script := range scripts {
		_, err := getConfiguration(writeConfiguration(t, script))
		assert.NotNil(t, err, "%d: expected error", i)
	}
}
