// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"bytes"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/escrowd/account"
	"github.com/bitmark-inc/escrowd/chain"
	"github.com/bitmark-inc/escrowd/constants"
	"github.com/bitmark-inc/escrowd/custody"
	"github.com/bitmark-inc/escrowd/ledger"
	"github.com/bitmark-inc/escrowd/rpc/listeners"
	"github.com/bitmark-inc/escrowd/rpc/listings"
	"github.com/bitmark-inc/escrowd/rpc/server"
	"github.com/bitmark-inc/escrowd/storage"
	"github.com/bitmark-inc/escrowd/token"
)

const (
	databaseFileName = "test.leveldb"
	testingDirName   = "testing"
	logCategory      = "testing"
)

func setupTestStorage(t *testing.T) {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

func teardownTestStorage() {
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(databaseFileName)
	_ = os.RemoveAll(testingDirName)
}

type eResp struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

var (
	admin  = account.Account{0xad}
	seller = account.Account{0x5e}
)

func testMux(t *testing.T, allow map[string][]string) (*http.ServeMux, *custody.Contract, *ledger.Store) {
	l := ledger.NewStore(chain.Local)
	c := custody.New(custody.Handles{
		Listings:  storage.Pool.Listings,
		Custodian: storage.Pool.Custodian,
	}, l, l)

	services := server.Services{
		Chain:    chain.Local,
		Version:  "0.1",
		Contract: c,
		Ledger:   l,
	}
	connections := &listeners.Connections{}
	services.Connections = connections.Count

	a, err := parseAllow(allow)
	if nil != err {
		t.Fatalf("allow error: %s", err)
	}

	log := logger.New(logCategory)
	return newMux(log, server.Create(log, services), services, connections, a), c, l
}

func TestRootNotFound(t *testing.T) {
	setupTestStorage(t)
	defer teardownTestStorage()

	mux, _, _ := testMux(t, nil)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nothing", nil))

	var e eResp
	_ = json.Unmarshal(w.Body.Bytes(), &e)
	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status")
	assert.Equal(t, "not found", e.Error, "wrong message")
}

func TestRPCOverHTTP(t *testing.T) {
	setupTestStorage(t)
	defer teardownTestStorage()

	mux, _, _ := testMux(t, nil)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/escrowd/rpc", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code, "GET rpc")

	body := []byte(`{"id":1,"method":"Node.Info","params":[{}]}`)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/escrowd/rpc", bytes.NewReader(body)))
	assert.Equal(t, http.StatusOK, w.Code, "POST rpc")

	reply := struct {
		ID     int `json:"id"`
		Result struct {
			Chain   string `json:"chain"`
			Version string `json:"version"`
		} `json:"result"`
		Error interface{} `json:"error"`
	}{}
	err := json.Unmarshal(w.Body.Bytes(), &reply)
	assert.Nil(t, err, "reply decode")
	assert.Equal(t, 1, reply.ID, "id")
	assert.Nil(t, reply.Error, "rpc error")
	assert.Equal(t, chain.Local, reply.Result.Chain, "chain")
	assert.Equal(t, "0.1", reply.Result.Version, "version")
}

func TestActiveListings(t *testing.T) {
	setupTestStorage(t)
	defer teardownTestStorage()

	mux, c, l := testMux(t, nil)

	// before create there is nothing to list
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/escrowd/listings", nil))
	assert.Equal(t, http.StatusOK, w.Code, "listings before create")

	s, err := c.Create(admin)
	assert.Nil(t, err, "create error")

	tok := token.Id(0)
	err = l.Update("setup", func(trx storage.Transaction) error {
		if err := l.Fund(trx, seller, 1000000); nil != err {
			return err
		}
		tok, err = l.CreateToken(trx, seller, token.Metadata{Name: "sunset"})
		return err
	})
	assert.Nil(t, err, "ledger setup")

	payment := func(amount uint64) ledger.Payment {
		return ledger.Payment{Sender: seller, Receiver: s.Custodian, Amount: amount}
	}
	err = c.RegisterHoldingCapability(seller, payment(constants.RegistrationCost), tok)
	assert.Nil(t, err, "register error")
	err = c.List(seller, payment(constants.Rent), ledger.AssetTransfer{
		Sender:   seller,
		Receiver: s.Custodian,
		Token:    tok,
		Amount:   1,
	}, 9000)
	assert.Nil(t, err, "list error")

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/escrowd/listings?count=5", nil))
	assert.Equal(t, http.StatusOK, w.Code, "listings")

	reply := listings.ActiveReply{}
	err = json.Unmarshal(w.Body.Bytes(), &reply)
	assert.Nil(t, err, "decode error")
	assert.Equal(t, 1, len(reply.Data), "one listing")
	assert.Equal(t, tok, reply.Data[0].Token, "token")
	assert.Equal(t, uint64(9000), reply.Data[0].Price, "price")
	assert.Equal(t, "sunset", reply.Data[0].Metadata.Name, "metadata")

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/escrowd/listings", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code, "POST listings")
}

func TestDetailsAllowList(t *testing.T) {
	setupTestStorage(t)
	defer teardownTestStorage()

	mux, c, _ := testMux(t, map[string][]string{
		"details": {"127.0.0.0/8"},
	})
	_, err := c.Create(admin)
	assert.Nil(t, err, "create error")

	r := httptest.NewRequest(http.MethodGet, "/escrowd/details", nil)
	r.RemoteAddr = net.JoinHostPort("10.1.2.3", "5555")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)
	assert.Equal(t, http.StatusForbidden, w.Code, "remote denied")

	r = httptest.NewRequest(http.MethodGet, "/escrowd/details", nil)
	r.RemoteAddr = net.JoinHostPort("127.0.0.1", "5555")
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code, "local allowed")

	details := struct {
		Chain     string `json:"chain"`
		Custodian struct {
			Admin string `json:"admin"`
		} `json:"custodian"`
	}{}
	err = json.Unmarshal(w.Body.Bytes(), &details)
	assert.Nil(t, err, "decode error")
	assert.Equal(t, chain.Local, details.Chain, "chain")
	assert.Equal(t, admin.String(), details.Custodian.Admin, "admin")
}
