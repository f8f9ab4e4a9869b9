// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 FlightSurety Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package flight - registry of insurable flights
//
// Flights are keyed by (airline identifier, flight key) so airlines
// cannot collide even when they reuse a flight number and timestamp.
// The status code is an oracle product and may be written before the
// flight is ever added; the registry stores it without an existence
// check and leaves the interpretation to the orchestrator.
package flight

import (
	"encoding/binary"
	"strconv"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/flightsurety/suretyd/account"
	"github.com/flightsurety/suretyd/amount"
	"github.com/flightsurety/suretyd/fault"
	"github.com/flightsurety/suretyd/flightkey"
	"github.com/flightsurety/suretyd/gate"
	"github.com/flightsurety/suretyd/storage"
)

// StatusCode - oracle delay classification
type StatusCode uint8

// the status code plan
const (
	StatusUnknown       StatusCode = 0
	StatusOnTime        StatusCode = 10
	StatusLateAirline   StatusCode = 20
	StatusLateWeather   StatusCode = 30
	StatusLateTechnical StatusCode = 40
	StatusLateOther     StatusCode = 50
)

// flight record flag bits
const (
	flagRegistered = 0x01
	flagCredited   = 0x02
)

// RecordLength - bytes in a packed flight record
const RecordLength = 10

// Record - the stored per-flight state
type Record struct {
	Registered   bool
	Credited     bool
	TotalPremium amount.Amount
	Status       StatusCode
}

// Pack - encode a record for storage
//
// layout: flags ‖ BE64 total premium ‖ status
func (r Record) Pack() []byte {
	buffer := make([]byte, RecordLength)
	if r.Registered {
		buffer[0] |= flagRegistered
	}
	if r.Credited {
		buffer[0] |= flagCredited
	}
	binary.BigEndian.PutUint64(buffer[1:9], r.TotalPremium.Uint64())
	buffer[9] = byte(r.Status)
	return buffer
}

// Unpack - decode a stored record
//
// a nil buffer yields the zero record: not registered, nothing
// accumulated; this is the mapping-default behaviour the purchase and
// status operations rely on
func Unpack(buffer []byte) Record {
	if nil == buffer {
		return Record{}
	}
	if RecordLength != len(buffer) {
		logger.Panicf("flight.Unpack truncated record: %x", buffer)
	}
	return Record{
		Registered:   0 != buffer[0]&flagRegistered,
		Credited:     0 != buffer[0]&flagCredited,
		TotalPremium: amount.Amount(binary.BigEndian.Uint64(buffer[1:9])),
		Status:       StatusCode(buffer[9]),
	}
}

// StorageKey - the (airline, flight key) composite storage key
func StorageKey(airline account.Identifier, key flightkey.Key) []byte {
	buffer := make([]byte, 0, account.IdentifierLength+flightkey.KeyLength)
	buffer = append(buffer, airline.Bytes()...)
	return append(buffer, key[:]...)
}

var globalData struct {
	sync.RWMutex
	log         *logger.L
	flights     storage.Handle
	flightIndex storage.Handle
	flightCount storage.Handle
	initialised bool
}

// Initialise - attach the registry to its storage pools
func Initialise(flights storage.Handle, flightIndex storage.Handle, flightCount storage.Handle) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("flight")
	globalData.log.Info("starting…")

	globalData.flights = flights
	globalData.flightIndex = flightIndex
	globalData.flightCount = flightCount

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

// Add - create a flight record and append its key to the airline's list
//
// re-adding an existing flight is rejected: the inherited alternative
// silently resets accumulated premium and status
func Add(caller account.Identifier, airline account.Identifier, flightNumber string, timestamp uint64) error {
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
	storageKey := StorageKey(airline, key)

	if Unpack(globalData.flights.Get(storageKey)).Registered {
		return fault.ErrFlightAlreadyRegistered
	}

	count, _ := globalData.flightCount.GetN(airline.Bytes())

	indexKey := make([]byte, 0, account.IdentifierLength+8)
	indexKey = append(indexKey, airline.Bytes()...)
	suffix := make([]byte, 8)
	binary.BigEndian.PutUint64(suffix, count)
	indexKey = append(indexKey, suffix...)

	batch := new(leveldb.Batch)
	globalData.flights.PutBatch(batch, storageKey, Record{Registered: true}.Pack())
	globalData.flightIndex.PutBatch(batch, indexKey, key[:])
	globalData.flightCount.PutNBatch(batch, airline.Bytes(), count+1)
	storage.WriteBatch(batch)

	globalData.log.Infof("added: %s  flight: %q @ %d  key: %s", airline, flightNumber, timestamp, key)

	return nil
}

// SetStatus - overwrite the status code from an oracle result
//
// no existence check: a status written for a never-added flight is
// stored and is semantically meaningless until the flight is added
func SetStatus(caller account.Identifier, airline account.Identifier, flightNumber string, timestamp uint64, status StatusCode) error {
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

	storageKey := StorageKey(airline, flightkey.New(flightNumber, timestamp))

	record := Unpack(globalData.flights.Get(storageKey))
	record.Status = status
	globalData.flights.Put(storageKey, record.Pack())

	globalData.log.Infof("status: %s  flight: %q @ %d  code: %s", airline, flightNumber, timestamp, status)

	return nil
}

// IsRegistered - gated read of the registration flag
func IsRegistered(caller account.Identifier, airline account.Identifier, flightNumber string, timestamp uint64) (bool, error) {
	record, err := read(caller, airline, flightNumber, timestamp)
	return record.Registered, err
}

// Status - gated read of the status code
func Status(caller account.Identifier, airline account.Identifier, flightNumber string, timestamp uint64) (StatusCode, error) {
	record, err := read(caller, airline, flightNumber, timestamp)
	return record.Status, err
}

// Keys - gated enumeration of an airline's flight keys
func Keys(caller account.Identifier, airline account.Identifier, start uint64, count int) ([]flightkey.Key, uint64, error) {
	if err := gate.RequireOperational(); nil != err {
		return nil, 0, err
	}
	if err := gate.RequireAuthorised(caller); nil != err {
		return nil, 0, err
	}

	globalData.RLock()
	defer globalData.RUnlock()

	keys := make([]flightkey.Key, 0, count)
	indexKey := make([]byte, account.IdentifierLength+8)
	copy(indexKey, airline.Bytes())
	next := start
	for i := 0; i < count; i += 1 {
		binary.BigEndian.PutUint64(indexKey[account.IdentifierLength:], next)
		record := globalData.flightIndex.Get(indexKey)
		if nil == record {
			break
		}
		var key flightkey.Key
		if err := flightkey.KeyFromBytes(&key, record); nil != err {
			return nil, 0, err
		}
		keys = append(keys, key)
		next += 1
	}

	return keys, next, nil
}

func read(caller account.Identifier, airline account.Identifier, flightNumber string, timestamp uint64) (Record, error) {
	if err := gate.RequireOperational(); nil != err {
		return Record{}, err
	}
	if err := gate.RequireAuthorised(caller); nil != err {
		return Record{}, err
	}

	globalData.RLock()
	defer globalData.RUnlock()

	return Unpack(globalData.flights.Get(StorageKey(airline, flightkey.New(flightNumber, timestamp)))), nil
}

// String - status code represented as a string
func (s StatusCode) String() string {
	switch s {
	case StatusUnknown:
		return "Unknown"
	case StatusOnTime:
		return "OnTime"
	case StatusLateAirline:
		return "LateAirline"
	case StatusLateWeather:
		return "LateWeather"
	case StatusLateTechnical:
		return "LateTechnical"
	case StatusLateOther:
		return "LateOther"
	default:
		return "Code(" + strconv.Itoa(int(s)) + ")"
	}
}
