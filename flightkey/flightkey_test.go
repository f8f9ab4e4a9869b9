// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 FlightSurety Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package flightkey_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flightsurety/suretyd/flightkey"
)

func TestDeterministic(t *testing.T) {
	k1 := flightkey.New("AA100", 1000)
	k2 := flightkey.New("AA100", 1000)
	assert.Equal(t, k1, k2, "same inputs produced different keys")
}

func TestDistinctInputs(t *testing.T) {
	base := flightkey.New("AA100", 1000)

	assert.NotEqual(t, base, flightkey.New("AA101", 1000), "different numbers collide")
	assert.NotEqual(t, base, flightkey.New("AA100", 1001), "different timestamps collide")

	// packing ambiguity: number suffix must not merge into timestamp
	assert.NotEqual(t, flightkey.New("AA1", 0x3030), flightkey.New("AA100", 0x30), "packed inputs collide")
}

func TestTextRoundTrip(t *testing.T) {
	key := flightkey.New("NH847", 1589500800)

	text, err := key.MarshalText()
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, 2*flightkey.KeyLength, len(text), "wrong text length")

	var back flightkey.Key
	err = back.UnmarshalText(text)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, key, back, "round trip mismatch")
}

func TestKeyFromBytes(t *testing.T) {
	key := flightkey.New("BA9", 42)

	var back flightkey.Key
	err := flightkey.KeyFromBytes(&back, key[:])
	assert.Nil(t, err, "conversion error")
	assert.Equal(t, key, back, "conversion mismatch")

	err = flightkey.KeyFromBytes(&back, key[:10])
	assert.NotNil(t, err, "short buffer accepted")
}
