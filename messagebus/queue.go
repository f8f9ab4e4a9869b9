// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 FlightSurety Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"github.com/flightsurety/suretyd/account"
	"github.com/flightsurety/suretyd/amount"
)

// internal constants
const (
	queueSize = 1000
)

// Message - item on the queue tagged with its originating subsystem
type Message struct {
	From string
	Item interface{}
}

// AuthorisedContract - a contract identity was added to the allow-list
type AuthorisedContract struct {
	Contract account.Identifier
}

// DeauthorisedContract - a contract identity was removed from the allow-list
type DeauthorisedContract struct {
	Contract account.Identifier
}

// TransferFunds - instruction to move value out to an account
//
// queued only after the corresponding credit balance debit is already
// committed to storage
type TransferFunds struct {
	To     account.Identifier
	Amount amount.Amount
}

var (
	// for queueing data
	queue = make(chan Message, queueSize)
)

// Send - data to queue
func Send(from string, item interface{}) {
	queue <- Message{
		From: from,
		Item: item,
	}
}

// Chan - channel to read from
func Chan() <-chan Message {
	return queue
}
