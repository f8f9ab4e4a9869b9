// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 FlightSurety Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON RPC surface for the orchestrator
//
// All services take a caller identifier in Base58 form; the ledger's
// own access rules decide whether the call is honoured. Connection
// authentication is the TLS layer's concern, not this package's.
package rpc
