// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"io/ioutil"
	"net/http"
)

// FetchBody - fetch the body of a successful HTTP GET
func FetchBody(client *http.Client, url string) ([]byte, error) {
	request, err := http.NewRequest("GET", url, nil)
	if nil != err {
		return nil, err
	}

	response, err := client.Do(request)
	if nil != err {
		return nil, err
	}
	defer response.Body.Close()
	body, err := ioutil.ReadAll(response.Body)
	if nil != err {
		return nil, err
	}

	if http.StatusOK != response.StatusCode {
		return nil, fmt.Errorf("status: %d %q on: %q", response.StatusCode, response.Status, url)
	}
	return body, nil
}
