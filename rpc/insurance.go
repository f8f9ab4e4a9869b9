// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 FlightSurety Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/flightsurety/suretyd/account"
	"github.com/flightsurety/suretyd/amount"
	"github.com/flightsurety/suretyd/insurance"
)

// Insurance - type for the RPC
type Insurance struct {
	Log     *logger.L
	Limiter *rate.Limiter
}

// ---

// InsuranceBuyArguments - record a policy purchase
type InsuranceBuyArguments struct {
	Caller       string `json:"caller"`
	Airline      string `json:"airline"`
	FlightNumber string `json:"flightNumber"`
	Timestamp    uint64 `json:"timestamp,string"`
	Insuree      string `json:"insuree"`
	Premium      uint64 `json:"premium,string"`
}

// InsuranceBuyReply - flight totals after the purchase
type InsuranceBuyReply struct {
	TotalPremium uint64 `json:"totalPremium,string"`
}

// Buy - record a policy purchase
func (i *Insurance) Buy(arguments *InsuranceBuyArguments, reply *InsuranceBuyReply) error {
	if err := rateLimit(i.Limiter); nil != err {
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
	insuree, err := account.IdentifierFromBase58(arguments.Insuree)
	if nil != err {
		return err
	}

	i.Log.Infof("Insurance.Buy: %s  flight: %q @ %d  insuree: %s  premium: %d", id, arguments.FlightNumber, arguments.Timestamp, insuree, arguments.Premium)

	err = insurance.Buy(caller, id, arguments.FlightNumber, arguments.Timestamp, insuree, amount.Amount(arguments.Premium))
	if nil != err {
		return err
	}

	total, err := insurance.TotalPremium(caller, id, arguments.FlightNumber, arguments.Timestamp)
	if nil != err {
		return err
	}
	reply.TotalPremium = total.Uint64()
	return nil
}

// ---

// InsuranceCreditArguments - identify the flight to credit
type InsuranceCreditArguments struct {
	Caller       string `json:"caller"`
	Airline      string `json:"airline"`
	FlightNumber string `json:"flightNumber"`
	Timestamp    uint64 `json:"timestamp,string"`
}

// InsuranceCreditReply - confirmation of crediting
type InsuranceCreditReply struct {
	Credited bool `json:"credited"`
}

// Credit - credit every insuree of a delayed flight
func (i *Insurance) Credit(arguments *InsuranceCreditArguments, reply *InsuranceCreditReply) error {
	if err := rateLimit(i.Limiter); nil != err {
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

	i.Log.Infof("Insurance.Credit: %s  flight: %q @ %d", id, arguments.FlightNumber, arguments.Timestamp)

	err = insurance.CreditInsurees(caller, id, arguments.FlightNumber, arguments.Timestamp)
	if nil != err {
		return err
	}

	reply.Credited = true
	return nil
}

// ---

// InsurancePremiumArguments - identify the flight to inspect
type InsurancePremiumArguments struct {
	Caller       string `json:"caller"`
	Airline      string `json:"airline"`
	FlightNumber string `json:"flightNumber"`
	Timestamp    uint64 `json:"timestamp,string"`
}

// InsurancePremiumReply - premium accumulated on the flight
type InsurancePremiumReply struct {
	TotalPremium uint64 `json:"totalPremium,string"`
}

// Premium - read the premium accumulated on a flight
func (i *Insurance) Premium(arguments *InsurancePremiumArguments, reply *InsurancePremiumReply) error {
	if err := rateLimit(i.Limiter); nil != err {
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

	total, err := insurance.TotalPremium(caller, id, arguments.FlightNumber, arguments.Timestamp)
	if nil != err {
		return err
	}
	reply.TotalPremium = total.Uint64()
	return nil
}

// ---

// InsurancePolicyArguments - identify one policy to inspect
type InsurancePolicyArguments struct {
	Caller       string `json:"caller"`
	Airline      string `json:"airline"`
	FlightNumber string `json:"flightNumber"`
	Timestamp    uint64 `json:"timestamp,string"`
	Insuree      string `json:"insuree"`
}

// InsurancePolicyReply - the stored policy
type InsurancePolicyReply struct {
	Found   bool   `json:"found"`
	Premium uint64 `json:"premium,string"`
	Payout  uint64 `json:"payout,string"`
}

// Policy - read one insuree's policy on a flight
func (i *Insurance) Policy(arguments *InsurancePolicyArguments, reply *InsurancePolicyReply) error {
	if err := rateLimit(i.Limiter); nil != err {
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
	insuree, err := account.IdentifierFromBase58(arguments.Insuree)
	if nil != err {
		return err
	}

	policy, found, err := insurance.GetPolicy(caller, id, arguments.FlightNumber, arguments.Timestamp, insuree)
	if nil != err {
		return err
	}

	reply.Found = found
	reply.Premium = policy.Premium.Uint64()
	reply.Payout = policy.Payout.Uint64()
	return nil
}
