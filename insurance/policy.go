// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 FlightSurety Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package insurance

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/flightsurety/suretyd/amount"
)

// policyLength - bytes in a packed policy record
const policyLength = 16

// Policy - the stored per-insuree state for one flight
//
// Payout stays zero until the crediting operation runs for the flight
type Policy struct {
	Premium amount.Amount
	Payout  amount.Amount
}

// layout: BE64 premium ‖ BE64 payout
func (p Policy) pack() []byte {
	buffer := make([]byte, policyLength)
	binary.BigEndian.PutUint64(buffer[:8], p.Premium.Uint64())
	binary.BigEndian.PutUint64(buffer[8:], p.Payout.Uint64())
	return buffer
}

func unpackPolicy(buffer []byte) Policy {
	if nil == buffer {
		return Policy{}
	}
	if policyLength != len(buffer) {
		logger.Panicf("insurance.unpackPolicy truncated record: %x", buffer)
	}
	return Policy{
		Premium: amount.Amount(binary.BigEndian.Uint64(buffer[:8])),
		Payout:  amount.Amount(binary.BigEndian.Uint64(buffer[8:])),
	}
}
