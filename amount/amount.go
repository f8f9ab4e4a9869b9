// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 FlightSurety Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package amount - monetary values
//
// All premiums, funding deposits, payouts and credit balances are held
// in the smallest indivisible unit as unsigned 64 bit integers. Every
// arithmetic operation is overflow checked; a calculation that cannot
// be represented aborts the enclosing ledger operation.
package amount

import (
	"strconv"

	"github.com/flightsurety/suretyd/fault"
)

// Amount - a monetary value in the smallest unit
type Amount uint64

// Add - overflow checked addition
func (a Amount) Add(b Amount) (Amount, error) {
	sum := a + b
	if sum < a {
		return 0, fault.ErrArithmeticOverflow
	}
	return sum, nil
}

// Sub - subtraction, fails rather than wrapping below zero
func (a Amount) Sub(b Amount) (Amount, error) {
	if b > a {
		return 0, fault.ErrInsufficientCredit
	}
	return a - b, nil
}

// MulDiv - overflow checked a × numerator ÷ denominator
//
// multiply first then divide, truncating; this is the order the payout
// ratio requires so that e.g. 5 × 3 ÷ 2 = 7 not 6
func (a Amount) MulDiv(numerator uint64, denominator uint64) (Amount, error) {
	if 0 == denominator {
		return 0, fault.ErrDivisionByZero
	}
	if 0 == numerator || 0 == a {
		return 0, nil
	}
	product := uint64(a) * numerator
	if product/numerator != uint64(a) {
		return 0, fault.ErrArithmeticOverflow
	}
	return Amount(product / denominator), nil
}

// Payout - the insurance benefit for a premium: 1.5 × with truncation
func (a Amount) Payout() (Amount, error) {
	return a.MulDiv(3, 2)
}

// Uint64 - plain integer value
func (a Amount) Uint64() uint64 {
	return uint64(a)
}

// String - decimal representation for use by the fmt package (for %s)
func (a Amount) String() string {
	return strconv.FormatUint(uint64(a), 10)
}
