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
	"github.com/flightsurety/suretyd/credit"
)

// Credit - type for the RPC
type Credit struct {
	Log     *logger.L
	Limiter *rate.Limiter
}

// ---

// CreditPayArguments - withdraw from an account's credit
type CreditPayArguments struct {
	Caller  string `json:"caller"`
	Account string `json:"account"`
	Amount  uint64 `json:"amount,string"`
}

// CreditPayReply - the balance left after the withdrawal
type CreditPayReply struct {
	Balance uint64 `json:"balance,string"`
}

// Pay - withdraw part of an account's accumulated credit
func (c *Credit) Pay(arguments *CreditPayArguments, reply *CreditPayReply) error {
	if err := rateLimit(c.Limiter); nil != err {
		return err
	}

	caller, err := account.IdentifierFromBase58(arguments.Caller)
	if nil != err {
		return err
	}
	id, err := account.IdentifierFromBase58(arguments.Account)
	if nil != err {
		return err
	}

	c.Log.Infof("Credit.Pay: %s  amount: %d", id, arguments.Amount)

	err = credit.Pay(caller, id, amount.Amount(arguments.Amount))
	if nil != err {
		return err
	}

	balance, err := credit.Balance(caller, id)
	if nil != err {
		return err
	}
	reply.Balance = balance.Uint64()
	return nil
}

// ---

// CreditBalanceArguments - identify the account to inspect
type CreditBalanceArguments struct {
	Caller  string `json:"caller"`
	Account string `json:"account"`
}

// CreditBalanceReply - the accumulated credit
type CreditBalanceReply struct {
	Balance uint64 `json:"balance,string"`
}

// Balance - read an account's accumulated credit
func (c *Credit) Balance(arguments *CreditBalanceArguments, reply *CreditBalanceReply) error {
	if err := rateLimit(c.Limiter); nil != err {
		return err
	}

	caller, err := account.IdentifierFromBase58(arguments.Caller)
	if nil != err {
		return err
	}
	id, err := account.IdentifierFromBase58(arguments.Account)
	if nil != err {
		return err
	}

	balance, err := credit.Balance(caller, id)
	if nil != err {
		return err
	}
	reply.Balance = balance.Uint64()
	return nil
}
