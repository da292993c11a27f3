// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package index

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	"github.com/bitmark-inc/escrowd/account"
	"github.com/bitmark-inc/escrowd/fault"
	"github.com/bitmark-inc/escrowd/ledger"
	"github.com/bitmark-inc/escrowd/token"
	"github.com/bitmark-inc/escrowd/util"
)

const remoteTimeout = 20 * time.Second

// field names used for the token id by different versions of the
// account information document
var tokenIdFields = []string{"assetId", "asset-id", "assetID", "index"}

// RemoteHoldings - holdings read from an account information service
type RemoteHoldings struct {
	urlFormat string
	client    *http.Client
}

// NewRemoteHoldings - urlFormat contains one %s replaced by the account
func NewRemoteHoldings(urlFormat string, client *http.Client) *RemoteHoldings {
	if nil == client {
		client = &http.Client{
			Timeout: remoteTimeout,
		}
	}
	return &RemoteHoldings{
		urlFormat: urlFormat,
		client:    client,
	}
}

// Holdings - fetch and decode the account's holdings
func (r *RemoteHoldings) Holdings(holder account.Account) ([]ledger.Holding, error) {
	body, err := util.FetchBody(r.client, fmt.Sprintf(r.urlFormat, holder))
	if nil != err {
		return nil, err
	}
	return DecodeHoldings(body)
}

// DecodeHoldings - extract holdings from an account information
// document
//
// the list is read from "account.assets" or "assets" and each item
// may name its token id with any of the known field names, items
// without a token id are ignored
func DecodeHoldings(document []byte) ([]ledger.Holding, error) {
	if !gjson.ValidBytes(document) {
		return nil, fault.InvalidHoldingsDocument
	}

	doc := gjson.ParseBytes(document)
	assets := doc.Get("account.assets")
	if !assets.Exists() {
		assets = doc.Get("assets")
	}
	if !assets.Exists() {
		return []ledger.Holding{}, nil
	}
	if !assets.IsArray() {
		return nil, fault.InvalidHoldingsDocument
	}

	holdings := make([]ledger.Holding, 0, 16)
	assets.ForEach(func(_, item gjson.Result) bool {
		id := gjson.Result{}
		for _, name := range tokenIdFields {
			id = item.Get(name)
			if id.Exists() {
				break
			}
		}
		if !id.Exists() {
			return true
		}
		holdings = append(holdings, ledger.Holding{
			Token:  token.Id(id.Uint()),
			Amount: item.Get("amount").Uint(),
		})
		return true
	})
	return holdings, nil
}
