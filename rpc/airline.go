// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 FlightSurety Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/flightsurety/suretyd/account"
	"github.com/flightsurety/suretyd/airline"
	"github.com/flightsurety/suretyd/amount"
)

// Airline - type for the RPC
type Airline struct {
	Log     *logger.L
	Limiter *rate.Limiter
}

const maximumRosterCount = 100

// ---

// AirlineRegisterArguments - add an airline to the registry
type AirlineRegisterArguments struct {
	Caller      string `json:"caller"`
	Airline     string `json:"airline"`
	Operational bool   `json:"operational"`
}

// AirlineRegisterReply - registry state after the call
type AirlineRegisterReply struct {
	Registered bool   `json:"registered"`
	RosterSize uint64 `json:"rosterSize,string"`
}

// Register - record an airline
func (a *Airline) Register(arguments *AirlineRegisterArguments, reply *AirlineRegisterReply) error {
	if err := rateLimit(a.Limiter); nil != err {
		return err
	}

	caller, err := account.IdentifierFromBase58(arguments.Caller)
	if nil != err {
		return err
	}
	id, err := account.IdentifierFromBase58(arguments.Airline)
	if nil != err {
		return err
	}

	a.Log.Infof("Airline.Register: %s  operational: %t", id, arguments.Operational)

	if err := airline.Register(caller, id, arguments.Operational); nil != err {
		return err
	}

	reply.Registered, err = airline.IsRegistered(caller, id)
	if nil != err {
		return err
	}
	reply.RosterSize, err = airline.RosterSize(caller)
	return err
}

// ---

// AirlineFundArguments - record an airline's deposit
type AirlineFundArguments struct {
	Caller  string `json:"caller"`
	Airline string `json:"airline"`
	Deposit uint64 `json:"deposit,string"`
}

// AirlineFundReply - operating state after the deposit
type AirlineFundReply struct {
	Operating bool `json:"operating"`
}

// Fund - record a deposit and mark the airline operational
func (a *Airline) Fund(arguments *AirlineFundArguments, reply *AirlineFundReply) error {
	if err := rateLimit(a.Limiter); nil != err {
		return err
	}

	caller, err := account.IdentifierFromBase58(arguments.Caller)
	if nil != err {
		return err
	}
	id, err := account.IdentifierFromBase58(arguments.Airline)
	if nil != err {
		return err
	}

	a.Log.Infof("Airline.Fund: %s  deposit: %d", id, arguments.Deposit)

	if err := airline.Fund(caller, id, amount.Amount(arguments.Deposit)); nil != err {
		return err
	}

	reply.Operating, err = airline.IsOperating(caller, id)
	return err
}

// ---

// AirlineStatusArguments - identify the airline to inspect
type AirlineStatusArguments struct {
	Caller  string `json:"caller"`
	Airline string `json:"airline"`
}

// AirlineStatusReply - the stored airline state
type AirlineStatusReply struct {
	Registered bool   `json:"registered"`
	Operating  bool   `json:"operating"`
	Funding    uint64 `json:"funding,string"`
}

// Status - read an airline's registry state
func (a *Airline) Status(arguments *AirlineStatusArguments, reply *AirlineStatusReply) error {
	if err := rateLimit(a.Limiter); nil != err {
		return err
	}

	caller, err := account.IdentifierFromBase58(arguments.Caller)
	if nil != err {
		return err
	}
	id, err := account.IdentifierFromBase58(arguments.Airline)
	if nil != err {
		return err
	}

	reply.Registered, err = airline.IsRegistered(caller, id)
	if nil != err {
		return err
	}
	reply.Operating, err = airline.IsOperating(caller, id)
	if nil != err {
		return err
	}
	funding, err := airline.FundingAmount(caller, id)
	if nil != err {
		return err
	}
	reply.Funding = funding.Uint64()
	return nil
}

// ---

// AirlineRosterArguments - page through the registration roster
type AirlineRosterArguments struct {
	Caller string `json:"caller"`
	Start  uint64 `json:"start,string"`
	Count  int    `json:"count"`
}

// AirlineRosterReply - one page of the roster
type AirlineRosterReply struct {
	Airlines  []account.Identifier `json:"airlines"`
	NextStart uint64               `json:"nextStart,string"`
}

// Roster - enumerate registrations in order
//
// duplicates appear as often as they were registered
func (a *Airline) Roster(arguments *AirlineRosterArguments, reply *AirlineRosterReply) error {
	if err := rateLimitN(a.Limiter, arguments.Count, maximumRosterCount); nil != err {
		return err
	}

	caller, err := account.IdentifierFromBase58(arguments.Caller)
	if nil != err {
		return err
	}

	airlines, nextStart, err := airline.Roster(caller, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Airlines = airlines
	reply.NextStart = nextStart
	return nil
}
