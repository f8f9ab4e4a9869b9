// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 FlightSurety Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flightsurety/suretyd/fault"
)

// test that each error belongs to exactly one class
func TestErrorClasses(t *testing.T) {
	assert.True(t, fault.IsErrAccess(fault.ErrNotOwner), "not owner should be access error")
	assert.True(t, fault.IsErrAccess(fault.ErrUnauthorisedCaller), "unauthorised caller should be access error")
	assert.True(t, fault.IsErrExists(fault.ErrAlreadyInsured), "already insured should be exists error")
	assert.True(t, fault.IsErrExists(fault.ErrFlightAlreadyRegistered), "flight already registered should be exists error")
	assert.True(t, fault.IsErrInvalid(fault.ErrInsufficientCredit), "insufficient credit should be invalid error")
	assert.True(t, fault.IsErrNotFound(fault.ErrNoInsureesForFlight), "no insurees should be not found error")
	assert.True(t, fault.IsErrProcess(fault.ErrNotOperational), "not operational should be process error")
	assert.True(t, fault.IsErrProcess(fault.ErrArithmeticOverflow), "overflow should be process error")

	assert.False(t, fault.IsErrAccess(fault.ErrNotOperational), "not operational is not an access error")
	assert.False(t, fault.IsErrProcess(fault.ErrNotOwner), "not owner is not a process error")
}

func TestErrorComparison(t *testing.T) {
	err := someOperation()
	assert.Equal(t, fault.ErrInsufficientCredit, err, "single instance comparison failed")
	assert.EqualError(t, err, "insufficient credit")
}

func someOperation() error {
	return fault.ErrInsufficientCredit
}
