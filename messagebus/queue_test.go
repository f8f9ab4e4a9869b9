// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 FlightSurety Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flightsurety/suretyd/account"
	"github.com/flightsurety/suretyd/messagebus"
)

func TestQueueOrdering(t *testing.T) {
	one, _ := account.IdentifierFromBytes(make([]byte, account.IdentifierLength))

	messagebus.Send("testing", messagebus.AuthorisedContract{Contract: one})
	messagebus.Send("testing", messagebus.DeauthorisedContract{Contract: one})

	m := <-messagebus.Chan()
	assert.Equal(t, "testing", m.From, "wrong source")
	_, ok := m.Item.(messagebus.AuthorisedContract)
	assert.True(t, ok, "first item should be the authorisation")

	m = <-messagebus.Chan()
	_, ok = m.Item.(messagebus.DeauthorisedContract)
	assert.True(t, ok, "second item should be the deauthorisation")
}
