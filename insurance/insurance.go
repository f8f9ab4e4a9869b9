// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 FlightSurety Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package insurance - policy purchases and payout crediting
//
// The ledger side of a purchase: the premium is accumulated on the
// flight, the insuree joins the flight's policy list and the policy
// detail is recorded. When the orchestrator reports a qualifying
// delay, every policy on the flight is credited at 1.5 × premium.
// Each operation commits all of its record changes in one batch, so a
// failure part way through a computation leaves nothing behind.
package insurance

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/flightsurety/suretyd/account"
	"github.com/flightsurety/suretyd/amount"
	"github.com/flightsurety/suretyd/fault"
	"github.com/flightsurety/suretyd/flight"
	"github.com/flightsurety/suretyd/flightkey"
	"github.com/flightsurety/suretyd/gate"
	"github.com/flightsurety/suretyd/storage"
)

var globalData struct {
	sync.RWMutex
	log         *logger.L
	flights     storage.Handle
	policies    storage.Handle
	policyList  storage.Handle
	policyCount storage.Handle
	credits     storage.Handle
	initialised bool
}

// Initialise - attach the ledger to its storage pools
func Initialise(flights storage.Handle, policies storage.Handle, policyList storage.Handle, policyCount storage.Handle, credits storage.Handle) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("insurance")
	globalData.log.Info("starting…")

	globalData.flights = flights
	globalData.policies = policies
	globalData.policyList = policyList
	globalData.policyCount = policyCount
	globalData.credits = credits

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

// Buy - record a policy purchase
//
// the value transfer equal to premium is settled by the orchestrator
// in the same call; only the ledger movement happens here. A second
// purchase by the same insuree for the same flight is rejected: the
// inherited overwrite would lose the first premium while the flight
// total keeps both.
func Buy(caller account.Identifier, airline account.Identifier, flightNumber string, timestamp uint64, insuree account.Identifier, premium amount.Amount) error {
	if err := gate.RequireOperational(); nil != err {
		return err
	}
	if err := gate.RequireAuthorised(caller); nil != err {
		return err
	}

	globalData.Lock()
	defer globalData.Unlock()
	storage.Ledger.Lock()
	defer storage.Ledger.Unlock()

	key := flightkey.New(flightNumber, timestamp)
	storageKey := flight.StorageKey(airline, key)

	policyKey := policyStorageKey(storageKey, insuree)
	if globalData.policies.Has(policyKey) {
		return fault.ErrAlreadyInsured
	}

	record := flight.Unpack(globalData.flights.Get(storageKey))
	total, err := record.TotalPremium.Add(premium)
	if nil != err {
		return err
	}
	record.TotalPremium = total

	count, _ := globalData.policyCount.GetN(storageKey)

	batch := new(leveldb.Batch)
	globalData.flights.PutBatch(batch, storageKey, record.Pack())
	globalData.policyList.PutBatch(batch, listStorageKey(storageKey, count), insuree.Bytes())
	globalData.policyCount.PutNBatch(batch, storageKey, count+1)
	globalData.policies.PutBatch(batch, policyKey, Policy{Premium: premium}.pack())
	storage.WriteBatch(batch)

	globalData.log.Infof("policy: %s  flight: %q @ %d  insuree: %s  premium: %s", airline, flightNumber, timestamp, insuree, premium)

	return nil
}

// CreditInsurees - compute payouts and credit every insuree of a flight
//
// payout is premium × 3 ÷ 2 truncating; the whole computation runs
// before any record is written, so an overflow anywhere aborts with
// every balance unchanged. A credited flag on the flight record makes
// repeat invocation fail instead of double-crediting.
func CreditInsurees(caller account.Identifier, airline account.Identifier, flightNumber string, timestamp uint64) error {
	if err := gate.RequireOperational(); nil != err {
		return err
	}
	if err := gate.RequireAuthorised(caller); nil != err {
		return err
	}

	globalData.Lock()
	defer globalData.Unlock()
	storage.Ledger.Lock()
	defer storage.Ledger.Unlock()

	key := flightkey.New(flightNumber, timestamp)
	storageKey := flight.StorageKey(airline, key)

	count, found := globalData.policyCount.GetN(storageKey)
	if !found || 0 == count {
		return fault.ErrNoInsureesForFlight
	}

	record := flight.Unpack(globalData.flights.Get(storageKey))
	if record.Credited {
		return fault.ErrPayoutAlreadyCredited
	}

	batch := new(leveldb.Batch)

	// accumulate per-account additions in insertion order
	order := make([]account.Identifier, 0, count)
	additions := make(map[account.Identifier]amount.Amount, count)

	for i := uint64(0); i < count; i += 1 {
		buffer := globalData.policyList.Get(listStorageKey(storageKey, i))
		insuree, err := account.IdentifierFromBytes(buffer)
		if nil != err {
			return err
		}

		policyKey := policyStorageKey(storageKey, insuree)
		policy := unpackPolicy(globalData.policies.Get(policyKey))

		payout, err := policy.Premium.Payout()
		if nil != err {
			return err
		}
		policy.Payout = payout
		globalData.policies.PutBatch(batch, policyKey, policy.pack())

		if _, ok := additions[insuree]; !ok {
			order = append(order, insuree)
		}
		sum, err := additions[insuree].Add(payout)
		if nil != err {
			return err
		}
		additions[insuree] = sum
	}

	for _, insuree := range order {
		balance, _ := globalData.credits.GetN(insuree.Bytes())
		newBalance, err := amount.Amount(balance).Add(additions[insuree])
		if nil != err {
			return err
		}
		globalData.credits.PutNBatch(batch, insuree.Bytes(), newBalance.Uint64())
	}

	record.Credited = true
	globalData.flights.PutBatch(batch, storageKey, record.Pack())

	storage.WriteBatch(batch)

	globalData.log.Infof("credited: %s  flight: %q @ %d  insurees: %d", airline, flightNumber, timestamp, count)

	return nil
}

// TotalPremium - gated read of the premium accumulated on a flight
func TotalPremium(caller account.Identifier, airline account.Identifier, flightNumber string, timestamp uint64) (amount.Amount, error) {
	if err := gate.RequireOperational(); nil != err {
		return 0, err
	}
	if err := gate.RequireAuthorised(caller); nil != err {
		return 0, err
	}

	globalData.RLock()
	defer globalData.RUnlock()

	storageKey := flight.StorageKey(airline, flightkey.New(flightNumber, timestamp))
	return flight.Unpack(globalData.flights.Get(storageKey)).TotalPremium, nil
}

// GetPolicy - gated read of one insuree's policy on a flight
//
// second return is false when no such policy exists
func GetPolicy(caller account.Identifier, airline account.Identifier, flightNumber string, timestamp uint64, insuree account.Identifier) (Policy, bool, error) {
	if err := gate.RequireOperational(); nil != err {
		return Policy{}, false, err
	}
	if err := gate.RequireAuthorised(caller); nil != err {
		return Policy{}, false, err
	}

	globalData.RLock()
	defer globalData.RUnlock()

	storageKey := flight.StorageKey(airline, flightkey.New(flightNumber, timestamp))
	buffer := globalData.policies.Get(policyStorageKey(storageKey, insuree))
	if nil == buffer {
		return Policy{}, false, nil
	}
	return unpackPolicy(buffer), true, nil
}

func policyStorageKey(flightStorageKey []byte, insuree account.Identifier) []byte {
	buffer := make([]byte, 0, len(flightStorageKey)+account.IdentifierLength)
	buffer = append(buffer, flightStorageKey...)
	return append(buffer, insuree.Bytes()...)
}

func listStorageKey(flightStorageKey []byte, index uint64) []byte {
	buffer := make([]byte, 0, len(flightStorageKey)+8)
	buffer = append(buffer, flightStorageKey...)
	suffix := make([]byte, 8)
	binary.BigEndian.PutUint64(suffix, index)
	return append(buffer, suffix...)
}
