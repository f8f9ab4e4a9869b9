// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 FlightSurety Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package airline - registry of airlines and their funding
//
// An airline is registered once and stays registered forever; it
// becomes operational only after a funding deposit is recorded. The
// roster is an append-only list of every airline ever registered and
// is the quorum base for the orchestrator's consensus voting, so
// entries are never removed or deduplicated.
package airline

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/flightsurety/suretyd/account"
	"github.com/flightsurety/suretyd/amount"
	"github.com/flightsurety/suretyd/fault"
	"github.com/flightsurety/suretyd/gate"
	"github.com/flightsurety/suretyd/storage"
)

// airline record flag bits
const (
	flagRegistered  = 0x01
	flagOperational = 0x02
)

var globalData struct {
	sync.RWMutex
	log         *logger.L
	airlines    storage.Handle
	roster      storage.Handle
	funding     storage.Handle
	initialised bool
}

// Initialise - attach the registry to its storage pools
func Initialise(airlines storage.Handle, roster storage.Handle, funding storage.Handle) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("airline")
	globalData.log.Info("starting…")

	globalData.airlines = airlines
	globalData.roster = roster
	globalData.funding = funding

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

// Register - record an airline and append it to the roster
//
// an already registered airline is simply recorded again: the record is
// overwritten and the roster gains another entry, matching the quorum
// arithmetic the orchestrator performs on ever-registered airlines
func Register(caller account.Identifier, airline account.Identifier, operational bool) error {
	if err := gate.RequireOperational(); nil != err {
		return err
	}
	if err := gate.RequireAuthorised(caller); nil != err {
		return err
	}

	globalData.Lock()
	defer globalData.Unlock()

	flags := byte(flagRegistered)
	if operational {
		flags |= flagOperational
	}

	index := uint64(0)
	if element, found := globalData.roster.LastElement(); found {
		index = binary.BigEndian.Uint64(element.Key) + 1
	}
	indexKey := make([]byte, 8)
	binary.BigEndian.PutUint64(indexKey, index)

	batch := new(leveldb.Batch)
	globalData.airlines.PutBatch(batch, airline.Bytes(), []byte{flags})
	globalData.roster.PutBatch(batch, indexKey, airline.Bytes())
	storage.WriteBatch(batch)

	globalData.log.Infof("registered: %s  operational: %t  roster index: %d", airline, operational, index)

	return nil
}

// Fund - record a funding deposit and mark the airline operational
//
// the deposit overwrites any previous record; minimum amount policy is
// the orchestrator's responsibility, not enforced here
func Fund(caller account.Identifier, airline account.Identifier, deposit amount.Amount) error {
	if err := gate.RequireOperational(); nil != err {
		return err
	}
	if err := gate.RequireAuthorised(caller); nil != err {
		return err
	}

	globalData.Lock()
	defer globalData.Unlock()

	flags := byte(0)
	if record := globalData.airlines.Get(airline.Bytes()); nil != record && len(record) > 0 {
		flags = record[0]
	}
	flags |= flagOperational

	batch := new(leveldb.Batch)
	globalData.funding.PutNBatch(batch, airline.Bytes(), deposit.Uint64())
	globalData.airlines.PutBatch(batch, airline.Bytes(), []byte{flags})
	storage.WriteBatch(batch)

	globalData.log.Infof("funded: %s  amount: %s", airline, deposit)

	return nil
}

// IsRegistered - gated read of the registration flag
func IsRegistered(caller account.Identifier, airline account.Identifier) (bool, error) {
	flags, err := readFlags(caller, airline)
	return 0 != flags&flagRegistered, err
}

// IsOperating - gated read of the operational flag
func IsOperating(caller account.Identifier, airline account.Identifier) (bool, error) {
	flags, err := readFlags(caller, airline)
	return 0 != flags&flagOperational, err
}

// FundingAmount - gated read of the recorded deposit, zero if none
func FundingAmount(caller account.Identifier, airline account.Identifier) (amount.Amount, error) {
	if err := gate.RequireOperational(); nil != err {
		return 0, err
	}
	if err := gate.RequireAuthorised(caller); nil != err {
		return 0, err
	}

	globalData.RLock()
	defer globalData.RUnlock()

	deposit, _ := globalData.funding.GetN(airline.Bytes())
	return amount.Amount(deposit), nil
}

// RosterSize - gated count of roster entries for quorum computation
func RosterSize(caller account.Identifier) (uint64, error) {
	if err := gate.RequireOperational(); nil != err {
		return 0, err
	}
	if err := gate.RequireAuthorised(caller); nil != err {
		return 0, err
	}

	globalData.RLock()
	defer globalData.RUnlock()

	element, found := globalData.roster.LastElement()
	if !found {
		return 0, nil
	}
	return binary.BigEndian.Uint64(element.Key) + 1, nil
}

// Roster - gated enumeration of ever-registered airlines
//
// returns up to count entries starting at start and the next start
// index for continuation
func Roster(caller account.Identifier, start uint64, count int) ([]account.Identifier, uint64, error) {
	if err := gate.RequireOperational(); nil != err {
		return nil, 0, err
	}
	if err := gate.RequireAuthorised(caller); nil != err {
		return nil, 0, err
	}

	globalData.RLock()
	defer globalData.RUnlock()

	entries := make([]account.Identifier, 0, count)
	indexKey := make([]byte, 8)
	next := start
	for i := 0; i < count; i += 1 {
		binary.BigEndian.PutUint64(indexKey, next)
		record := globalData.roster.Get(indexKey)
		if nil == record {
			break
		}
		id, err := account.IdentifierFromBytes(record)
		if nil != err {
			return nil, 0, err
		}
		entries = append(entries, id)
		next += 1
	}

	return entries, next, nil
}

func readFlags(caller account.Identifier, airline account.Identifier) (byte, error) {
	if err := gate.RequireOperational(); nil != err {
		return 0, err
	}
	if err := gate.RequireAuthorised(caller); nil != err {
		return 0, err
	}

	globalData.RLock()
	defer globalData.RUnlock()

	record := globalData.airlines.Get(airline.Bytes())
	if nil == record || 0 == len(record) {
		return 0, nil
	}
	return record[0], nil
}
