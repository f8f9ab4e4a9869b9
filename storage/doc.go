// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 FlightSurety Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the ledger in a key-value store
//
// All ledger state lives in a single LevelDB database divided into
// named pools by a one byte key prefix:
//
//	A → airline records          airline id → flags
//	R → airline roster           BE index → airline id
//	F → funding records          airline id → BE amount
//	N → flight count             airline id → BE count
//	I → flight index             airline id + BE index → flight key
//	G → flight records           airline id + flight key → packed record
//	C → policy count             airline id + flight key → BE count
//	P → policy list              airline id + flight key + BE index → insuree id
//	D → policy details           airline id + flight key + insuree id → packed record
//	B → credit balances          account id → BE amount
//	Z → testing data
//
// Pool handles are handed to each ledger component at initialisation;
// multi-record mutations are committed through a single batch so a
// failing operation leaves no partial state behind.
package storage
