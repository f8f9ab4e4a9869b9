// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 FlightSurety Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AccessError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised           = ProcessError("already initialised")
	ErrAlreadyInsured               = ExistsError("insuree already holds a policy for this flight")
	ErrArithmeticOverflow           = ProcessError("arithmetic overflow")
	ErrCannotDecodeIdentifier       = InvalidError("cannot decode identifier")
	ErrCertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ErrChecksumMismatch             = InvalidError("checksum mismatch")
	ErrDivisionByZero               = InvalidError("division by zero")
	ErrFlightAlreadyRegistered      = ExistsError("flight already registered")
	ErrInsufficientCredit           = InvalidError("insufficient credit")
	ErrInvalidCount                 = InvalidError("invalid count")
	ErrInvalidLoggerChannel         = InvalidError("invalid logger channel")
	ErrInvalidStructPointer         = InvalidError("invalid struct pointer")
	ErrKeyFileAlreadyExists         = ExistsError("key file already exists")
	ErrNoInsureesForFlight          = NotFoundError("no insurees recorded for flight")
	ErrNotInitialised               = ProcessError("not initialised")
	ErrNotOperational               = ProcessError("not operational")
	ErrNotOwner                     = AccessError("caller is not the owner")
	ErrPayoutAlreadyCredited        = ExistsError("payout already credited for flight")
	ErrRateLimiting                 = ProcessError("rate limiting active")
	ErrUnauthorisedCaller           = AccessError("caller is not authorised")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AccessError) Error() string   { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrAccess(e error) bool   { _, ok := e.(AccessError); return ok }
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
