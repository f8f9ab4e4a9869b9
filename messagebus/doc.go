// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 FlightSurety Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - process-wide notification queue
//
// Ledger components queue observable notifications here; the daemon's
// audit loop drains the queue. External auditors watch the audit log
// rather than subscribing directly.
package messagebus
