// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 FlightSurety Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package flightkey - deterministic flight identification
//
// A flight key is the SHA3-256 digest of the flight number and the
// scheduled departure timestamp. Keys are scoped per airline by the
// storage layer, so two airlines reusing the same number and timestamp
// cannot collide in the ledger.
package flightkey

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/flightsurety/suretyd/fault"
)

// KeyLength - number of bytes in the key
const KeyLength = 32

// Key - type for a flight key
//
// stored and displayed as big endian hex value
// to convert to bytes just use key[:]
type Key [KeyLength]byte

// New - derive the key for a flight number and departure timestamp
//
// the zero byte separator prevents different (number, timestamp)
// pairs from packing to the same digest input
func New(flightNumber string, timestamp uint64) Key {
	buffer := make([]byte, 0, len(flightNumber)+9)
	buffer = append(buffer, flightNumber...)
	buffer = append(buffer, 0x00)

	ts := make([]byte, 8)
	binary.BigEndian.PutUint64(ts, timestamp)
	buffer = append(buffer, ts...)

	return sha3.Sum256(buffer)
}

// String - convert a binary key to hex string for use by the fmt package (for %s)
func (key Key) String() string {
	return hex.EncodeToString(key[:])
}

// GoString - convert a binary key to hex string for use by the fmt package (for %#v)
func (key Key) GoString() string {
	return "<SHA3-256:" + hex.EncodeToString(key[:]) + ">"
}

// MarshalText - convert key to hex text
func (key Key) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(key))
	buffer := make([]byte, size)
	hex.Encode(buffer, key[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a key
func (key *Key) UnmarshalText(s []byte) error {
	if KeyLength != hex.DecodedLen(len(s)) {
		return fault.ErrCannotDecodeIdentifier
	}
	buffer := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	copy(key[:], buffer[:byteCount])
	return nil
}

// KeyFromBytes - convert and validate a binary byte slice to a key
func KeyFromBytes(key *Key, buffer []byte) error {
	if KeyLength != len(buffer) {
		return fault.ErrCannotDecodeIdentifier
	}
	copy(key[:], buffer)
	return nil
}
