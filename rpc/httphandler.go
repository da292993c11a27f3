// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strconv"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/escrowd/custody"
	"github.com/bitmark-inc/escrowd/fault"
	"github.com/bitmark-inc/escrowd/index"
	"github.com/bitmark-inc/escrowd/rpc/listeners"
	"github.com/bitmark-inc/escrowd/rpc/listings"
)

// defaults for listing pages
const (
	defaultCount = 10
	maximumCount = listings.MaximumListingsCount
)

// InternalConnection - type to allow rpc system to interface to http request
type InternalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *InternalConnection) Read(p []byte) (n int, err error) {
	return c.in.Read(p)
}
func (c *InternalConnection) Write(d []byte) (n int, err error) {
	return c.out.Write(d)
}
func (c *InternalConnection) Close() error {
	return nil
}

// the argument passed to the handlers
type httpHandler struct {
	log         *logger.L
	server      *rpc.Server
	start       time.Time
	version     string
	chain       string
	contract    *custody.Contract
	listings    *listings.Listings
	connections *listeners.Connections
	allow       map[string][]*net.IPNet
}

// this matches anything not matched and returns error
func (s *httpHandler) root(w http.ResponseWriter, r *http.Request) {
	sendNotFound(w)
}

// performs a call to any normal RPC
func (s *httpHandler) rpc(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	s.connections.Increment()
	defer s.connections.Decrement()

	serverCodec := jsonrpc.NewServerCodec(&InternalConnection{in: r.Body, out: w})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	err := s.server.ServeRequest(serverCodec)
	if nil != err {
		s.log.Debugf("rpc request error: %s", err)
	}
}

// GET the reconstructed active listings
//
// query parameters:
//   start=<uint64>    [entries to skip  default: 0]
//   count=<int>       [1..100  default: 10]
func (s *httpHandler) activeListings(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	s.connections.Increment()
	defer s.connections.Decrement()

	_ = r.ParseForm()

	start := uint64(0)
	if n, err := strconv.ParseUint(r.Form.Get("start"), 10, 64); nil == err {
		start = n
	}

	count := defaultCount
	if n, err := strconv.Atoi(r.Form.Get("count")); nil == err && n >= 1 && n <= maximumCount {
		count = n
	}

	reply := listings.ActiveReply{}
	err := s.listings.Active(&listings.ActiveArguments{Start: start, Count: count}, &reply)
	if nil != err {
		if fault.NotCreated == err {
			sendReply(w, listings.ActiveReply{Next: start, Data: []index.Entry{}})
			return
		}
		s.log.Errorf("active listings error: %s", err)
		sendInternalServerError(w)
		return
	}

	sendReply(w, reply)
}

// GET daemon status (restricted by the allow list)
func (s *httpHandler) details(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !s.allowed("details", r.RemoteAddr) {
		s.log.Warnf("Deny access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}

	s.connections.Increment()
	defer s.connections.Decrement()

	type custodianState struct {
		Admin      string `json:"admin"`
		Custodian  string `json:"custodian"`
		Commission uint64 `json:"commission,string"`
	}
	type theReply struct {
		Chain     string          `json:"chain"`
		Version   string          `json:"version"`
		Uptime    string          `json:"uptime"`
		RPCs      uint64          `json:"rpcs"`
		Custodian *custodianState `json:"custodian,omitempty"`
	}

	reply := theReply{
		Chain:   s.chain,
		Version: s.version,
		Uptime:  time.Since(s.start).String(),
		RPCs:    s.connections.Count(),
	}

	state, err := s.contract.Info()
	if nil == err {
		reply.Custodian = &custodianState{
			Admin:      state.Admin.String(),
			Custodian:  state.Custodian.String(),
			Commission: state.Commission,
		}
	}

	sendReply(w, reply)
}

// check the remote address against the allow list for a path
func (s *httpHandler) allowed(path string, remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if nil != err {
		return false
	}
	ip := net.ParseIP(host)
	if nil == ip {
		return false
	}
	for _, cidr := range s.allow[path] {
		if cidr.Contains(ip) {
			return true
		}
	}
	return false
}

// send an JSON encoded reply
func sendReply(w http.ResponseWriter, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(text)
}

// selected errors as required above
func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}
func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}
func sendForbidden(w http.ResponseWriter) {
	sendError(w, "forbidden", http.StatusForbidden)
}
func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

// to compose JSON error messages
type eType struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// output an error with a JSON body
func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(eType{
		Code:  code,
		Error: message,
	})
	if nil != err {
		// manually composed error just incase JSON fails
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}
