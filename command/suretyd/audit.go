// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 FlightSurety Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"

	"github.com/flightsurety/suretyd/account"
	"github.com/flightsurety/suretyd/amount"
	"github.com/flightsurety/suretyd/messagebus"
)

// busTransferor - queues withdrawals on the message bus for the
// orchestrator to settle
//
// queueing cannot fail, so a paid withdrawal is never rolled back here;
// the orchestrator replays unsettled transfers from the audit trail
type busTransferor struct {
	log *logger.L
}

func (t *busTransferor) Transfer(to account.Identifier, value amount.Amount) error {
	messagebus.Send("credit", messagebus.TransferFunds{To: to, Amount: value})
	t.log.Infof("transfer queued: %s  amount: %s", to, value)
	return nil
}

// drain the message bus into the audit log
//
// every authorisation change and outbound transfer leaves a trace even
// when no orchestrator is connected
func auditLoop(log *logger.L, done <-chan struct{}) {
	log.Info("starting…")
	for {
		select {
		case <-done:
			log.Info("finished")
			return
		case message := <-messagebus.Chan():
			switch item := message.Item.(type) {
			case messagebus.AuthorisedContract:
				log.Infof("%s: authorised: %s", message.From, item.Contract)
			case messagebus.DeauthorisedContract:
				log.Infof("%s: deauthorised: %s", message.From, item.Contract)
			case messagebus.TransferFunds:
				log.Infof("%s: transfer: %s  amount: %s", message.From, item.To, item.Amount)
			default:
				log.Warnf("%s: unexpected item: %v", message.From, item)
			}
		}
	}
}
