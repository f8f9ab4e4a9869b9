// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 FlightSurety Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"golang.org/x/crypto/sha3"
)

// FingerprintBytes - type for a certificate fingerprint
type FingerprintBytes [32]byte

// Fingerprint - fingerprint a certificate
//
// openssl x509 -outform DER -in suretyd-rpc.crt | sha3sum -a 256
// provides a way to double check on the command line
func Fingerprint(certificate []byte) FingerprintBytes {
	return sha3.Sum256(certificate)
}
