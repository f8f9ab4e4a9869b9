// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 FlightSurety Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - read Lua configuration files
//
// The configuration is a Lua program whose final expression is a table;
// the table is mapped onto a Go structure using gluamapper tags.
package configuration
