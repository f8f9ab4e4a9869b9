// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 FlightSurety Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package flight_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flightsurety/suretyd/amount"
	"github.com/flightsurety/suretyd/fault"
	"github.com/flightsurety/suretyd/flight"
	"github.com/flightsurety/suretyd/gate"
)

func TestAdd(t *testing.T) {
	a1 := identifier(0x20)

	err := flight.Add(trusted, a1, "AA100", 1000)
	assert.Nil(t, err, "add error")

	registered, err := flight.IsRegistered(trusted, a1, "AA100", 1000)
	assert.Nil(t, err, "registration read error")
	assert.True(t, registered, "flight not registered")

	status, err := flight.Status(trusted, a1, "AA100", 1000)
	assert.Nil(t, err, "status read error")
	assert.Equal(t, flight.StatusUnknown, status, "new flight has a status")

	// same number and timestamp under another airline is a distinct flight
	a2 := identifier(0x21)
	registered, _ = flight.IsRegistered(trusted, a2, "AA100", 1000)
	assert.False(t, registered, "flight leaked across airlines")
}

func TestAddDuplicate(t *testing.T) {
	a1 := identifier(0x22)

	err := flight.Add(trusted, a1, "NH847", 2000)
	assert.Nil(t, err, "add error")

	err = flight.Add(trusted, a1, "NH847", 2000)
	assert.Equal(t, fault.ErrFlightAlreadyRegistered, err, "duplicate add accepted")
}

func TestSetStatus(t *testing.T) {
	a1 := identifier(0x23)

	_ = flight.Add(trusted, a1, "BA9", 3000)

	err := flight.SetStatus(trusted, a1, "BA9", 3000, flight.StatusLateAirline)
	assert.Nil(t, err, "set status error")

	status, err := flight.Status(trusted, a1, "BA9", 3000)
	assert.Nil(t, err, "status read error")
	assert.Equal(t, flight.StatusLateAirline, status, "wrong status")
}

func TestSetStatusUnaddedFlight(t *testing.T) {
	a1 := identifier(0x24)

	// status for a never-added flight is stored without complaint
	err := flight.SetStatus(trusted, a1, "QF1", 4000, flight.StatusLateWeather)
	assert.Nil(t, err, "set status error")

	status, err := flight.Status(trusted, a1, "QF1", 4000)
	assert.Nil(t, err, "status read error")
	assert.Equal(t, flight.StatusLateWeather, status, "wrong status")

	registered, _ := flight.IsRegistered(trusted, a1, "QF1", 4000)
	assert.False(t, registered, "status write registered the flight")
}

func TestKeys(t *testing.T) {
	a1 := identifier(0x25)

	_ = flight.Add(trusted, a1, "LH400", 5000)
	_ = flight.Add(trusted, a1, "LH401", 5001)

	keys, next, err := flight.Keys(trusted, a1, 0, 100)
	assert.Nil(t, err, "keys error")
	assert.Equal(t, 2, len(keys), "wrong key count")
	assert.Equal(t, uint64(2), next, "wrong next start")
}

func TestRecordPack(t *testing.T) {
	record := flight.Record{
		Registered:   true,
		Credited:     true,
		TotalPremium: amount.Amount(123456),
		Status:       flight.StatusLateTechnical,
	}

	back := flight.Unpack(record.Pack())
	assert.Equal(t, record, back, "pack round trip mismatch")

	assert.Equal(t, flight.Record{}, flight.Unpack(nil), "nil buffer not zero record")
}

func TestGuards(t *testing.T) {
	a1 := identifier(0x26)

	err := flight.Add(stranger, a1, "EK1", 6000)
	assert.Equal(t, fault.ErrUnauthorisedCaller, err, "stranger added a flight")

	_, err = flight.Status(stranger, a1, "EK1", 6000)
	assert.Equal(t, fault.ErrUnauthorisedCaller, err, "stranger read a status")

	_ = gate.SetOperational(owner, false)
	defer func() { _ = gate.SetOperational(owner, true) }()

	err = flight.Add(trusted, a1, "EK1", 6000)
	assert.Equal(t, fault.ErrNotOperational, err, "added while paused")

	err = flight.SetStatus(trusted, a1, "EK1", 6000, flight.StatusOnTime)
	assert.Equal(t, fault.ErrNotOperational, err, "status set while paused")
}
