// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 FlightSurety Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package gate - operational switch and caller allow-list
//
// Every mutating or reading ledger operation passes this gate first:
// the process-wide operational flag must be up and the caller must be
// on the allow-list of authorised contracts. Only the owner may flip
// the flag or edit the allow-list; flipping the flag is the single
// operation that works while the gate is down.
package gate

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/flightsurety/suretyd/account"
	"github.com/flightsurety/suretyd/fault"
	"github.com/flightsurety/suretyd/messagebus"
)

// Mode - type to hold the gate state
type Mode int

// all possible modes
const (
	Paused Mode = iota
	Active
	maximum
)

var globalData struct {
	sync.RWMutex
	log         *logger.L
	owner       account.Identifier
	mode        Mode
	authorised  map[account.Identifier]struct{}
	initialised bool
}

// Initialise - set up the gate
//
// the gate starts Active with an empty allow-list
func Initialise(owner account.Identifier) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("gate")
	globalData.log.Info("starting…")

	globalData.owner = owner
	globalData.mode = Active
	globalData.authorised = make(map[account.Identifier]struct{})

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - shutdown gate handling
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.mode = Paused
	globalData.authorised = nil
	globalData.initialised = false

	return nil
}

// SetOperational - flip the operational flag
//
// owner only; works in either state so a paused ledger can be resumed
func SetOperational(caller account.Identifier, operational bool) error {
	globalData.Lock()
	defer globalData.Unlock()

	if caller != globalData.owner {
		return fault.ErrNotOwner
	}

	if operational {
		globalData.mode = Active
	} else {
		globalData.mode = Paused
	}
	globalData.log.Infof("set: %s", globalData.mode)

	return nil
}

// Authorise - add a contract identity to the allow-list
func Authorise(caller account.Identifier, contract account.Identifier) error {
	globalData.Lock()
	defer globalData.Unlock()

	if Active != globalData.mode {
		return fault.ErrNotOperational
	}
	if caller != globalData.owner {
		return fault.ErrNotOwner
	}

	globalData.authorised[contract] = struct{}{}
	globalData.log.Infof("authorised: %s", contract)

	messagebus.Send("gate", messagebus.AuthorisedContract{Contract: contract})

	return nil
}

// Deauthorise - remove a contract identity from the allow-list
func Deauthorise(caller account.Identifier, contract account.Identifier) error {
	globalData.Lock()
	defer globalData.Unlock()

	if Active != globalData.mode {
		return fault.ErrNotOperational
	}
	if caller != globalData.owner {
		return fault.ErrNotOwner
	}

	delete(globalData.authorised, contract)
	globalData.log.Infof("deauthorised: %s", contract)

	messagebus.Send("gate", messagebus.DeauthorisedContract{Contract: contract})

	return nil
}

// IsOperational - detect gate state
func IsOperational() bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return Active == globalData.mode
}

// IsAuthorised - detect allow-list membership
func IsAuthorised(caller account.Identifier) bool {
	globalData.RLock()
	defer globalData.RUnlock()
	_, ok := globalData.authorised[caller]
	return ok
}

// Owner - the administrative identity
func Owner() account.Identifier {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.owner
}

// RequireOperational - guard predicate used by every ledger operation
func RequireOperational() error {
	if !IsOperational() {
		return fault.ErrNotOperational
	}
	return nil
}

// RequireAuthorised - guard predicate used by every ledger operation
//
// the owner is NOT implicitly authorised; it must be allow-listed
// separately to call ledger operations
func RequireAuthorised(caller account.Identifier) error {
	if !IsAuthorised(caller) {
		return fault.ErrUnauthorisedCaller
	}
	return nil
}

// String - current gate state represented as a string
func String() string {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.mode.String()
}

// String - gate state represented as a string
func (m Mode) String() string {
	switch m {
	case Paused:
		return "Paused"
	case Active:
		return "Active"
	default:
		return "*Unknown*"
	}
}
