// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 FlightSurety Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"io"
	"net/rpc"
	"net/rpc/jsonrpc"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
)

// per service rate limits
const (
	rateLimitGate      = 200
	rateBurstGate      = 100
	rateLimitAirline   = 200
	rateBurstAirline   = 100
	rateLimitFlight    = 200
	rateBurstFlight    = 100
	rateLimitInsurance = 200
	rateBurstInsurance = 100
	rateLimitCredit    = 200
	rateBurstCredit    = 100
	rateLimitNode      = 200
	rateBurstNode      = 100
)

// connectionCounter - concurrency safe connection counter
type connectionCounter uint64

func (c *connectionCounter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(c), 1)
}

func (c *connectionCounter) Decrement() uint64 {
	return atomic.AddUint64((*uint64)(c), ^uint64(0))
}

func (c *connectionCounter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}

var connectionCount connectionCounter

// ServerArgument - the argument passed to the callback
type ServerArgument struct {
	Log    *logger.L
	Server *rpc.Server
}

// CreateServer - create a server instance with all services registered
func CreateServer(log *logger.L, version string) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(&Gate{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitGate, rateBurstGate),
	})
	_ = server.Register(&Airline{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitAirline, rateBurstAirline),
	})
	_ = server.Register(&Flight{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitFlight, rateBurstFlight),
	})
	_ = server.Register(&Insurance{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitInsurance, rateBurstInsurance),
	})
	_ = server.Register(&Credit{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitCredit, rateBurstCredit),
	})
	_ = server.Register(&Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		start:   start,
		version: version,
	})

	return server
}

// Callback - called by the listener for each inbound connection
func Callback(conn io.ReadWriteCloser, argument interface{}) {

	serverArgument := argument.(*ServerArgument)

	log := serverArgument.Log
	log.Info("starting…")

	connectionCount.Increment()
	defer connectionCount.Decrement()

	codec := jsonrpc.NewServerCodec(conn)
	defer codec.Close()
	serverArgument.Server.ServeCodec(codec)

	log.Info("finished")
}
