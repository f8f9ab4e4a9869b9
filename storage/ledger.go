// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 FlightSurety Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"
)

// Ledger - serialises read-modify-write cycles on shared pools
//
// a batch commit is atomic but the reads that computed it are not,
// and the Flights and Credits pools are mutated from more than one
// component. Any operation that reads a flight record or a credit
// balance and writes back a derived value must hold this lock from
// the first read to the commit, otherwise a concurrent writer can
// slip a change between the two and have it overwritten.
var Ledger sync.Mutex
