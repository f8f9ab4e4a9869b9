// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 FlightSurety Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/flightsurety/suretyd/account"
	"github.com/flightsurety/suretyd/flight"
	"github.com/flightsurety/suretyd/flightkey"
)

// Flight - type for the RPC
type Flight struct {
	Log     *logger.L
	Limiter *rate.Limiter
}

const maximumKeyCount = 100

// ---

// FlightAddArguments - register a flight for an airline
type FlightAddArguments struct {
	Caller       string `json:"caller"`
	Airline      string `json:"airline"`
	FlightNumber string `json:"flightNumber"`
	Timestamp    uint64 `json:"timestamp,string"`
}

// FlightAddReply - the derived flight key
type FlightAddReply struct {
	Key flightkey.Key `json:"key"`
}

// Add - register a flight
func (f *Flight) Add(arguments *FlightAddArguments, reply *FlightAddReply) error {
	if err := rateLimit(f.Limiter); nil != err {
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

	f.Log.Infof("Flight.Add: %s  flight: %q @ %d", id, arguments.FlightNumber, arguments.Timestamp)

	if err := flight.Add(caller, id, arguments.FlightNumber, arguments.Timestamp); nil != err {
		return err
	}

	reply.Key = flightkey.New(arguments.FlightNumber, arguments.Timestamp)
	return nil
}

// ---

// FlightSetStatusArguments - store an oracle status report
type FlightSetStatusArguments struct {
	Caller       string `json:"caller"`
	Airline      string `json:"airline"`
	FlightNumber string `json:"flightNumber"`
	Timestamp    uint64 `json:"timestamp,string"`
	Status       uint8  `json:"status"`
}

// FlightSetStatusReply - the stored status
type FlightSetStatusReply struct {
	Status string `json:"status"`
}

// SetStatus - record the delay classification for a flight
func (f *Flight) SetStatus(arguments *FlightSetStatusArguments, reply *FlightSetStatusReply) error {
	if err := rateLimit(f.Limiter); nil != err {
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

	status := flight.StatusCode(arguments.Status)

	f.Log.Infof("Flight.SetStatus: %s  flight: %q @ %d  status: %s", id, arguments.FlightNumber, arguments.Timestamp, status)

	if err := flight.SetStatus(caller, id, arguments.FlightNumber, arguments.Timestamp, status); nil != err {
		return err
	}

	reply.Status = status.String()
	return nil
}

// ---

// FlightStatusArguments - identify the flight to inspect
type FlightStatusArguments struct {
	Caller       string `json:"caller"`
	Airline      string `json:"airline"`
	FlightNumber string `json:"flightNumber"`
	Timestamp    uint64 `json:"timestamp,string"`
}

// FlightStatusReply - the stored flight state
type FlightStatusReply struct {
	Registered bool          `json:"registered"`
	Key        flightkey.Key `json:"key"`
	StatusCode uint8         `json:"statusCode"`
	Status     string        `json:"status"`
}

// Status - read a flight's registry state
func (f *Flight) Status(arguments *FlightStatusArguments, reply *FlightStatusReply) error {
	if err := rateLimit(f.Limiter); nil != err {
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

	reply.Registered, err = flight.IsRegistered(caller, id, arguments.FlightNumber, arguments.Timestamp)
	if nil != err {
		return err
	}
	status, err := flight.Status(caller, id, arguments.FlightNumber, arguments.Timestamp)
	if nil != err {
		return err
	}

	reply.Key = flightkey.New(arguments.FlightNumber, arguments.Timestamp)
	reply.StatusCode = uint8(status)
	reply.Status = status.String()
	return nil
}

// ---

// FlightKeysArguments - page through an airline's flights
type FlightKeysArguments struct {
	Caller  string `json:"caller"`
	Airline string `json:"airline"`
	Start   uint64 `json:"start,string"`
	Count   int    `json:"count"`
}

// FlightKeysReply - one page of flight keys
type FlightKeysReply struct {
	Keys      []flightkey.Key `json:"keys"`
	NextStart uint64          `json:"nextStart,string"`
}

// Keys - enumerate an airline's flights in registration order
func (f *Flight) Keys(arguments *FlightKeysArguments, reply *FlightKeysReply) error {
	if err := rateLimitN(f.Limiter, arguments.Count, maximumKeyCount); nil != err {
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

	keys, nextStart, err := flight.Keys(caller, id, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Keys = keys
	reply.NextStart = nextStart
	return nil
}
