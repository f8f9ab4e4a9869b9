// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 FlightSurety Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package credit - accumulated payout balances and withdrawal
//
// Crediting a flight only moves amounts onto these balances; nothing
// leaves the ledger until the insuree asks to be paid. Pay debits the
// stored balance before the transfer is attempted, so a transferor
// that calls back into the ledger can never see the pre-debit balance.
package credit

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/flightsurety/suretyd/account"
	"github.com/flightsurety/suretyd/amount"
	"github.com/flightsurety/suretyd/fault"
	"github.com/flightsurety/suretyd/gate"
	"github.com/flightsurety/suretyd/storage"
)

// Transferor - moves value out of the ledger to an account
//
// implemented by the orchestrator connection; an error means no value
// moved and the debited amount is restored
type Transferor interface {
	Transfer(to account.Identifier, value amount.Amount) error
}

var globalData struct {
	sync.RWMutex
	log         *logger.L
	credits     storage.Handle
	transferor  Transferor
	initialised bool
}

// Initialise - attach the ledger to its pool and the outbound transferor
func Initialise(credits storage.Handle, transferor Transferor) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("credit")
	globalData.log.Info("starting…")

	globalData.credits = credits
	globalData.transferor = transferor

	globalData.initialised = true

	return nil
}

// Finalise - detach from storage
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.initialised = false

	return nil
}

// Balance - gated read of an account's accumulated credit
func Balance(caller account.Identifier, owner account.Identifier) (amount.Amount, error) {
	if err := gate.RequireOperational(); nil != err {
		return 0, err
	}
	if err := gate.RequireAuthorised(caller); nil != err {
		return 0, err
	}

	globalData.RLock()
	defer globalData.RUnlock()

	balance, _ := globalData.credits.GetN(owner.Bytes())
	return amount.Amount(balance), nil
}

// Pay - withdraw part of an account's credit
//
// the balance is debited and stored first and the transfer attempted
// after; a failed transfer restores the amount against whatever the
// balance is by then. The lock is not held across the transfer so the
// transferor may consult the ledger.
func Pay(caller account.Identifier, owner account.Identifier, value amount.Amount) error {
	if err := gate.RequireOperational(); nil != err {
		return err
	}
	if err := gate.RequireAuthorised(caller); nil != err {
		return err
	}

	globalData.Lock()
	storage.Ledger.Lock()

	balance, _ := globalData.credits.GetN(owner.Bytes())
	remaining, err := amount.Amount(balance).Sub(value)
	if nil != err {
		storage.Ledger.Unlock()
		globalData.Unlock()
		return err
	}
	globalData.credits.PutN(owner.Bytes(), remaining.Uint64())
	transferor := globalData.transferor
	storage.Ledger.Unlock()
	globalData.Unlock()

	if err := transferor.Transfer(owner, value); nil != err {
		globalData.Lock()
		storage.Ledger.Lock()
		balance, _ := globalData.credits.GetN(owner.Bytes())
		restored, restoreErr := amount.Amount(balance).Add(value)
		if nil != restoreErr {
			storage.Ledger.Unlock()
			globalData.Unlock()
			globalData.log.Criticalf("restore overflow: %s  amount: %s", owner, value)
			return restoreErr
		}
		globalData.credits.PutN(owner.Bytes(), restored.Uint64())
		storage.Ledger.Unlock()
		globalData.Unlock()
		globalData.log.Warnf("transfer failed: %s  amount: %s  error: %s", owner, value, err)
		return err
	}

	globalData.log.Infof("paid: %s  amount: %s", owner, value)

	return nil
}
