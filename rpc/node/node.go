// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/escrowd/custody"
	"github.com/bitmark-inc/escrowd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log         *logger.L
	Limiter     *rate.Limiter
	Start       time.Time
	Version     string
	Chain       string
	Contract    *custody.Contract
	Connections func() uint64
}

// New - handler for daemon status
func New(log *logger.L, chainName string, version string, start time.Time, contract *custody.Contract, connections func() uint64) *Node {
	return &Node{
		Log:         log,
		Limiter:     rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:       start,
		Version:     version,
		Chain:       chainName,
		Contract:    contract,
		Connections: connections,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain     string `json:"chain"`
	Version   string `json:"version"`
	Uptime    string `json:"uptime"`
	RPCs      uint64 `json:"rpcs"`
	Created   bool   `json:"created"`
	Custodian string `json:"custodian,omitempty"`
}

// Info - return some information about this daemon
func (node *Node) Info(arguments *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Chain = node.Chain
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.RPCs = node.Connections()

	custodian, err := node.Contract.GetCustodian()
	if nil == err {
		reply.Created = true
		reply.Custodian = custodian.String()
	}
	return nil
}
