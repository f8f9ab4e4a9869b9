// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 FlightSurety Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - account identifiers
//
// An identifier is an opaque fixed-length value naming an airline,
// an insuree or an authorised contract. The text representation is
// Base58 over the identifier bytes followed by a four byte SHA3-256
// checksum, so a mistyped identifier fails to parse rather than
// silently naming a different account.
package account

import (
	"bytes"
	"fmt"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/flightsurety/suretyd/fault"
)

// IdentifierLength - number of bytes in an identifier
const IdentifierLength = 32

// number of checksum bytes appended before Base58 encoding
const checksumLength = 4

// Identifier - the account identity used as a ledger key
type Identifier [IdentifierLength]byte

// IdentifierFromBytes - convert and validate a binary byte slice to an identifier
func IdentifierFromBytes(buffer []byte) (Identifier, error) {
	var id Identifier
	if IdentifierLength != len(buffer) {
		return id, fault.ErrCannotDecodeIdentifier
	}
	copy(id[:], buffer)
	return id, nil
}

// IdentifierFromBase58 - convert a Base58 encoded string to an identifier
//
// the trailing checksum is verified
func IdentifierFromBase58(identifierBase58Encoded string) (Identifier, error) {
	var id Identifier

	decoded, err := base58.Decode(identifierBase58Encoded)
	if nil != err {
		return id, fault.ErrCannotDecodeIdentifier
	}
	if IdentifierLength+checksumLength != len(decoded) {
		return id, fault.ErrCannotDecodeIdentifier
	}

	checksum := sha3.Sum256(decoded[:IdentifierLength])
	if !bytes.Equal(checksum[:checksumLength], decoded[IdentifierLength:]) {
		return id, fault.ErrChecksumMismatch
	}

	copy(id[:], decoded[:IdentifierLength])
	return id, nil
}

// Bytes - byte slice for use as a storage key
func (id Identifier) Bytes() []byte {
	return id[:]
}

// String - Base58 encoding with checksum for use by the fmt package (for %s)
func (id Identifier) String() string {
	buffer := make([]byte, 0, IdentifierLength+checksumLength)
	buffer = append(buffer, id[:]...)
	checksum := sha3.Sum256(id[:])
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// GoString - representation for use by the fmt package (for %#v)
func (id Identifier) GoString() string {
	return "<identifier:" + id.String() + ">"
}

// MarshalText - encode identifier for JSON purposes
func (id Identifier) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - decode identifier from JSON
func (id *Identifier) UnmarshalText(s []byte) error {
	decoded, err := IdentifierFromBase58(string(s))
	if nil != err {
		return err
	}
	*id = decoded
	return nil
}

// ensure interfaces are actually implemented
var _ fmt.Stringer = Identifier{}
