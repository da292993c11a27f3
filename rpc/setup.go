// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"crypto/tls"
	"net"
	"net/http"
	"net/rpc"
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/escrowd/fault"
	"github.com/bitmark-inc/escrowd/rpc/certificate"
	"github.com/bitmark-inc/escrowd/rpc/listeners"
	"github.com/bitmark-inc/escrowd/rpc/listings"
	"github.com/bitmark-inc/escrowd/rpc/server"
)

const (
	tlsName   = "client_rpc"
	httpsName = "https_rpc"

	readWriteTimeout = 10 * time.Second
)

// HTTPSConfiguration - configuration file data for HTTPS setup
type HTTPSConfiguration struct {
	MaximumConnections uint64              `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string            `gluamapper:"listen" json:"listen"`
	Certificate        string              `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string              `gluamapper:"private_key" json:"private_key"`
	Allow              map[string][]string `gluamapper:"allow" json:"allow"`
}

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	connections listeners.Connections
	listener    *listeners.RPCListener
	servers     []*http.Server

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start the JSON RPC and HTTPS servers
//
// certificate and private key fields are file names
func Initialise(rpcConfiguration *listeners.RPCConfiguration, httpsConfiguration *HTTPSConfiguration, services server.Services) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to Start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	services.Connections = globalData.connections.Count
	s := server.Create(log, services)

	if 0 == len(rpcConfiguration.Listen) {
		log.Infof("disable: %s", tlsName)
	} else {
		tlsConfig, fingerprint, err := certificate.Load(log, tlsName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
		if nil != err {
			return err
		}

		rpcListener, err := listeners.NewRPC(
			rpcConfiguration,
			log,
			&globalData.connections,
			s,
			tlsConfig,
			fingerprint,
		)
		if nil != err {
			return err
		}
		err = rpcListener.Serve()
		if nil != err {
			return err
		}
		globalData.listener = rpcListener
	}

	err := initialiseHTTPS(httpsConfiguration, s, services)
	if nil != err {
		if nil != globalData.listener {
			globalData.listener.Close()
			globalData.listener = nil
		}
		return err
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	if nil != globalData.listener {
		globalData.listener.Close()
		globalData.listener = nil
	}
	for _, s := range globalData.servers {
		_ = s.Close()
	}
	globalData.servers = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// start the HTTPS endpoints
func initialiseHTTPS(configuration *HTTPSConfiguration, s *rpc.Server, services server.Services) error {

	log := globalData.log

	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsName)
		return nil
	}

	if configuration.MaximumConnections < 1 {
		log.Errorf("invalid %s maximum connection limit: %d", httpsName, configuration.MaximumConnections)
		return fault.MissingParameters
	}

	tlsConfiguration, fingerprint, err := certificate.Load(log, httpsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", httpsName, fingerprint)

	allow, err := parseAllow(configuration.Allow)
	if nil != err {
		return err
	}

	mux := newMux(log, s, services, &globalData.connections, allow)

	for _, listen := range configuration.Listen {
		log.Infof("starting server: %s on: %q", httpsName, listen)
		if '*' == listen[0] {
			// change "*:PORT" to "[::]:PORT"
			// on the assumption that this will listen on tcp4 and tcp6
			listen = "[::]" + ":" + strings.Split(listen, ":")[1]
		}

		ln, err := net.Listen("tcp", listen)
		if err != nil {
			log.Errorf("%s listen error: %s", httpsName, err)
			return err
		}

		hs := &http.Server{
			Addr:           listen,
			Handler:        mux,
			ReadTimeout:    readWriteTimeout,
			WriteTimeout:   readWriteTimeout,
			MaxHeaderBytes: 1 << 20,
		}
		globalData.servers = append(globalData.servers, hs)

		go serveTLS(log, hs, ln, tlsConfiguration.Clone())
	}

	return nil
}

// create access control to match http.Request.RemoteAddr
func parseAllow(configuration map[string][]string) (map[string][]*net.IPNet, error) {
	local := make(map[string][]*net.IPNet)
	for path, addresses := range configuration {
		set := make([]*net.IPNet, len(addresses))
		local[path] = set
		for i, ip := range addresses {
			_, cidr, err := net.ParseCIDR(strings.Trim(ip, " "))
			if nil != err {
				return nil, err
			}
			set[i] = cidr
		}
	}
	return local, nil
}

// route every endpoint
func newMux(log *logger.L, s *rpc.Server, services server.Services, connections *listeners.Connections, allow map[string][]*net.IPNet) *http.ServeMux {

	holdings := services.Holdings
	if nil == holdings {
		holdings = services.Ledger
	}

	handler := &httpHandler{
		log:         log,
		server:      s,
		start:       time.Now(),
		version:     services.Version,
		chain:       services.Chain,
		contract:    services.Contract,
		listings:    listings.New(log, services.Contract, holdings, services.Ledger),
		connections: connections,
		allow:       allow,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/escrowd/rpc", handler.rpc)
	mux.HandleFunc("/escrowd/listings", handler.activeListings)
	mux.HandleFunc("/escrowd/details", handler.details)
	mux.HandleFunc("/", handler.root)
	return mux
}

type tcpKeepAliveListener struct {
	*net.TCPListener
}

func (ln tcpKeepAliveListener) Accept() (c net.Conn, err error) {
	tc, err := ln.AcceptTCP()
	if err != nil {
		return
	}
	_ = tc.SetKeepAlive(true)
	_ = tc.SetKeepAlivePeriod(3 * time.Minute)
	return tc, nil
}

// serve HTTPS using an in-memory TLS key pair
func serveTLS(log *logger.L, s *http.Server, ln net.Listener, cfg *tls.Config) {
	cfg.NextProtos = []string{"http/1.1"}

	tlsListener := tls.NewListener(tcpKeepAliveListener{ln.(*net.TCPListener)}, cfg)

	err := s.Serve(tlsListener)
	if nil != err && http.ErrServerClosed != err {
		log.Errorf("%s serve error: %s", httpsName, err)
	}
}
