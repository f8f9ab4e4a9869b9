// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 FlightSurety Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/flightsurety/suretyd/account"
	"github.com/flightsurety/suretyd/gate"
)

// Gate - type for the RPC
type Gate struct {
	Log     *logger.L
	Limiter *rate.Limiter
}

// ---

// GateSetOperationalArguments - set the operational state
type GateSetOperationalArguments struct {
	Caller      string `json:"caller"`
	Operational bool   `json:"operational"`
}

// GateSetOperationalReply - the resulting state
type GateSetOperationalReply struct {
	Mode string `json:"mode"`
}

// SetOperational - pause or resume the ledger
//
// owner only and deliberately exempt from the operational check so a
// paused ledger can always be resumed
func (g *Gate) SetOperational(arguments *GateSetOperationalArguments, reply *GateSetOperationalReply) error {
	if err := rateLimit(g.Limiter); nil != err {
		return err
	}

	caller, err := account.IdentifierFromBase58(arguments.Caller)
	if nil != err {
		return err
	}

	g.Log.Infof("Gate.SetOperational: %s → %t", caller, arguments.Operational)

	if err := gate.SetOperational(caller, arguments.Operational); nil != err {
		return err
	}

	reply.Mode = gate.String()
	return nil
}

// ---

// GateAuthoriseArguments - grant or revoke a contract authorisation
type GateAuthoriseArguments struct {
	Caller   string `json:"caller"`
	Contract string `json:"contract"`
}

// GateAuthoriseReply - resulting authorisation state of the contract
type GateAuthoriseReply struct {
	Authorised bool `json:"authorised"`
}

// Authorise - allow a contract account to drive the ledger
func (g *Gate) Authorise(arguments *GateAuthoriseArguments, reply *GateAuthoriseReply) error {
	if err := rateLimit(g.Limiter); nil != err {
		return err
	}

	caller, err := account.IdentifierFromBase58(arguments.Caller)
	if nil != err {
		return err
	}
	contract, err := account.IdentifierFromBase58(arguments.Contract)
	if nil != err {
		return err
	}

	g.Log.Infof("Gate.Authorise: %s", contract)

	if err := gate.Authorise(caller, contract); nil != err {
		return err
	}

	reply.Authorised = gate.IsAuthorised(contract)
	return nil
}

// Deauthorise - revoke a contract account's authorisation
func (g *Gate) Deauthorise(arguments *GateAuthoriseArguments, reply *GateAuthoriseReply) error {
	if err := rateLimit(g.Limiter); nil != err {
		return err
	}

	caller, err := account.IdentifierFromBase58(arguments.Caller)
	if nil != err {
		return err
	}
	contract, err := account.IdentifierFromBase58(arguments.Contract)
	if nil != err {
		return err
	}

	g.Log.Infof("Gate.Deauthorise: %s", contract)

	if err := gate.Deauthorise(caller, contract); nil != err {
		return err
	}

	reply.Authorised = gate.IsAuthorised(contract)
	return nil
}

// ---

// GateStatusArguments - no parameters
type GateStatusArguments struct{}

// GateStatusReply - current gate state
type GateStatusReply struct {
	Operational bool   `json:"operational"`
	Mode        string `json:"mode"`
}

// Status - report the operational state
//
// readable by anyone, even while paused
func (g *Gate) Status(arguments *GateStatusArguments, reply *GateStatusReply) error {
	if err := rateLimit(g.Limiter); nil != err {
		return err
	}

	reply.Operational = gate.IsOperational()
	reply.Mode = gate.String()
	return nil
}
