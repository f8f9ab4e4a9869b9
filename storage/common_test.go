// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 FlightSurety Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/flightsurety/suretyd/storage"
)

const (
	testingDirName = "testing"
	databaseName   = testingDirName + "/test"
)

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

func setup() {
	removeFiles()
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

	// start logging
	_ = logger.Initialise(logging)

	err := storage.Initialise(databaseName, storage.ReadWrite)
	if nil != err {
		panic("storage initialise failed: " + err.Error())
	}
}

func teardown() {
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

func TestMain(m *testing.M) {
	setup()
	rc := m.Run()
	teardown()
	os.Exit(rc)
}
