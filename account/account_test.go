// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 FlightSurety Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flightsurety/suretyd/account"
	"github.com/flightsurety/suretyd/fault"
)

func makeIdentifier(fill byte) account.Identifier {
	buffer := make([]byte, account.IdentifierLength)
	for i := range buffer {
		buffer[i] = fill
	}
	id, _ := account.IdentifierFromBytes(buffer)
	return id
}

func TestBase58RoundTrip(t *testing.T) {
	id := makeIdentifier(0x3d)

	encoded := id.String()
	assert.NotEqual(t, "", encoded, "empty encoding")

	decoded, err := account.IdentifierFromBase58(encoded)
	assert.Nil(t, err, "decode error")
	assert.Equal(t, id, decoded, "round trip mismatch")
}

func TestChecksumDetectsCorruption(t *testing.T) {
	id := makeIdentifier(0x11)
	encoded := id.String()

	// flip one character somewhere in the middle
	corrupted := []byte(encoded)
	if corrupted[10] == '2' {
		corrupted[10] = '3'
	} else {
		corrupted[10] = '2'
	}

	_, err := account.IdentifierFromBase58(string(corrupted))
	assert.NotNil(t, err, "corrupted identifier was accepted")
}

func TestInvalidLength(t *testing.T) {
	_, err := account.IdentifierFromBytes([]byte{1, 2, 3})
	assert.Equal(t, fault.ErrCannotDecodeIdentifier, err, "wrong error for short buffer")

	_, err = account.IdentifierFromBase58("abc")
	assert.Equal(t, fault.ErrCannotDecodeIdentifier, err, "wrong error for short encoding")
}

func TestTextMarshalling(t *testing.T) {
	id := makeIdentifier(0x7f)

	text, err := id.MarshalText()
	assert.Nil(t, err, "marshal error")

	var back account.Identifier
	err = back.UnmarshalText(text)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, id, back, "text round trip mismatch")
}
