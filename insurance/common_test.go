// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 FlightSurety Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package insurance_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/flightsurety/suretyd/account"
	"github.com/flightsurety/suretyd/flight"
	"github.com/flightsurety/suretyd/gate"
	"github.com/flightsurety/suretyd/insurance"
	"github.com/flightsurety/suretyd/storage"
)

const (
	testingDirName = "testing"
	databaseName   = testingDirName + "/test"
)

var (
	owner    account.Identifier
	trusted  account.Identifier
	stranger account.Identifier
)

func identifier(fill byte) account.Identifier {
	buffer := make([]byte, account.IdentifierLength)
	for i := range buffer {
		buffer[i] = fill
	}
	id, _ := account.IdentifierFromBytes(buffer)
	return id
}

// current credit balance straight from the pool
func creditBalance(id account.Identifier) uint64 {
	balance, _ := storage.Pool.Credits.GetN(id.Bytes())
	return balance
}

func setup() {
	_ = os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	owner = identifier(0x01)
	trusted = identifier(0x02)
	stranger = identifier(0x03)

	if err := storage.Initialise(databaseName, storage.ReadWrite); nil != err {
		panic("storage initialise failed: " + err.Error())
	}
	if err := gate.Initialise(owner); nil != err {
		panic("gate initialise failed: " + err.Error())
	}
	if err := flight.Initialise(storage.Pool.Flights, storage.Pool.FlightIndex, storage.Pool.FlightCount); nil != err {
		panic("flight initialise failed: " + err.Error())
	}
	if err := insurance.Initialise(storage.Pool.Flights, storage.Pool.Policies, storage.Pool.PolicyList, storage.Pool.PolicyCount, storage.Pool.Credits); nil != err {
		panic("insurance initialise failed: " + err.Error())
	}
	if err := gate.Authorise(owner, trusted); nil != err {
		panic("authorise failed: " + err.Error())
	}
}

func teardown() {
	_ = insurance.Finalise()
	_ = flight.Finalise()
	_ = gate.Finalise()
	storage.Finalise()
	logger.Finalise()
	_ = os.RemoveAll(testingDirName)
}

func TestMain(m *testing.M) {
	setup()
	rc := m.Run()
	teardown()
	os.Exit(rc)
}
