// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 FlightSurety Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/listener"
	"github.com/bitmark-inc/logger"

	"github.com/flightsurety/suretyd/account"
	"github.com/flightsurety/suretyd/airline"
	"github.com/flightsurety/suretyd/credit"
	"github.com/flightsurety/suretyd/fault"
	"github.com/flightsurety/suretyd/flight"
	"github.com/flightsurety/suretyd/gate"
	"github.com/flightsurety/suretyd/insurance"
	"github.com/flightsurety/suretyd/rpc"
	"github.com/flightsurety/suretyd/storage"
	"github.com/flightsurety/suretyd/version"
)

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version.Version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// set up the fault panic log (now that logging is available)
	fault.Initialise()
	defer fault.Finalise()

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// the owner account controls the gate
	owner, err := account.IdentifierFromBase58(theConfiguration.Owner)
	if nil != err {
		log.Criticalf("invalid owner: %q  error: %s", theConfiguration.Owner, err)
		exitwithstatus.Message("invalid owner: %q  error: %s", theConfiguration.Owner, err)
	}

	// start a profiling http server
	// this uses the default builtin HTTP handler
	// and is not associated with the ClientRPC TLS server
	if "" != theConfiguration.ProfileHTTP {
		go func() {
			log.Warnf("profile listener on: %s", theConfiguration.ProfileHTTP)
			err := http.ListenAndServe(theConfiguration.ProfileHTTP, nil)
			exitwithstatus.Message("profile error: %s", err)
		}()
	}

	// general info
	log.Infof("owner: %s", owner)
	log.Infof("database: %q", theConfiguration.Database)

	// connection info
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	// access control gate - before any ledger operations
	log.Info("initialise gate")
	err = gate.Initialise(owner)
	if nil != err {
		log.Criticalf("gate initialise error: %s", err)
		exitwithstatus.Message("gate initialise error: %s", err)
	}
	defer gate.Finalise()

	// airline registry
	log.Info("initialise airline")
	err = airline.Initialise(storage.Pool.Airlines, storage.Pool.AirlineRoster, storage.Pool.Funding)
	if nil != err {
		log.Criticalf("airline initialise error: %s", err)
		exitwithstatus.Message("airline initialise error: %s", err)
	}
	defer airline.Finalise()

	// flight registry
	log.Info("initialise flight")
	err = flight.Initialise(storage.Pool.Flights, storage.Pool.FlightIndex, storage.Pool.FlightCount)
	if nil != err {
		log.Criticalf("flight initialise error: %s", err)
		exitwithstatus.Message("flight initialise error: %s", err)
	}
	defer flight.Finalise()

	// insurance ledger
	log.Info("initialise insurance")
	err = insurance.Initialise(storage.Pool.Flights, storage.Pool.Policies, storage.Pool.PolicyList, storage.Pool.PolicyCount, storage.Pool.Credits)
	if nil != err {
		log.Criticalf("insurance initialise error: %s", err)
		exitwithstatus.Message("insurance initialise error: %s", err)
	}
	defer insurance.Finalise()

	// credit ledger with outbound transfers on the message bus
	log.Info("initialise credit")
	err = credit.Initialise(storage.Pool.Credits, &busTransferor{log: logger.New("transfer")})
	if nil != err {
		log.Criticalf("credit initialise error: %s", err)
		exitwithstatus.Message("credit initialise error: %s", err)
	}
	defer credit.Finalise()

	// pre-authorise the configured contract accounts
	contracts := make([]account.Identifier, 0, len(theConfiguration.Contracts))
	for i, contractBase58 := range theConfiguration.Contracts {
		contract, err := account.IdentifierFromBase58(contractBase58)
		if nil != err {
			log.Criticalf("invalid contract: %d: %q  error: %s", i, contractBase58, err)
			exitwithstatus.Message("invalid contract: %d: %q  error: %s", i, contractBase58, err)
		}
		err = gate.Authorise(owner, contract)
		if nil != err {
			log.Criticalf("authorise contract: %s  error: %s", contract, err)
			exitwithstatus.Message("authorise contract: %s  error: %s", contract, err)
		}
		log.Infof("authorised contract: %s", contract)
		contracts = append(contracts, contract)
	}

	// seed the first airline on an empty roster
	// needs an authorised contract to act through
	if "" != theConfiguration.FirstAirline {
		if 0 == len(contracts) {
			log.Warn("first_airline configured but no contracts to register it")
		} else {
			first, err := account.IdentifierFromBase58(theConfiguration.FirstAirline)
			if nil != err {
				log.Criticalf("invalid first_airline: %q  error: %s", theConfiguration.FirstAirline, err)
				exitwithstatus.Message("invalid first_airline: %q  error: %s", theConfiguration.FirstAirline, err)
			}
			size, err := airline.RosterSize(contracts[0])
			if nil != err {
				log.Criticalf("roster size error: %s", err)
				exitwithstatus.Message("roster size error: %s", err)
			}
			if 0 == size {
				err = airline.Register(contracts[0], first, false)
				if nil != err {
					log.Criticalf("register first airline: %s  error: %s", first, err)
					exitwithstatus.Message("register first airline: %s  error: %s", first, err)
				}
				log.Infof("registered first airline: %s", first)
			}
		}
	}

	// audit trail for message bus events
	auditDone := make(chan struct{})
	go auditLoop(logger.New("audit"), auditDone)
	defer close(auditDone)

	// RPC server
	rpcLog := logger.New("rpc-server")
	servers := map[string]*serverChannel{
		"rpc": {
			limit:               theConfiguration.ClientRPC.MaximumConnections,
			addresses:           theConfiguration.ClientRPC.Listen,
			certificateFileName: theConfiguration.ClientRPC.Certificate,
			keyFileName:         theConfiguration.ClientRPC.PrivateKey,
			callback:            rpc.Callback,
			argument: &rpc.ServerArgument{
				Log:    rpcLog,
				Server: rpc.CreateServer(rpcLog, version.Version),
			},
		},
	}

	// validate server parameters
	for name, server := range servers {
		log.Infof("validate: %s", name)
		_, ok := verifyListen(log, name, server)
		if !ok {
			log.Criticalf("invalid %s parameters", name)
			exitwithstatus.Message("invalid %s parameters", name)
		}
		if 0 == server.limit {
			continue
		}
		log.Infof("multi listener for: %s", name)
		ml, err := listener.NewMultiListener(name, server.addresses, server.tlsConfiguration, server.limiter, server.callback)
		if nil != err {
			log.Criticalf("invalid %s listen addresses", name)
			exitwithstatus.Message("invalid %s listen addresses", name)
		}
		server.listener = ml
	}

	// now start listeners
	serversStarted := 0
	for name, server := range servers {
		if nil != server.listener {
			log.Infof("starting server: %s", name)
			server.listener.Start(server.argument)
			defer server.listener.Stop()
			serversStarted += 1
		}
	}
	if 0 == serversStarted {
		log.Critical("no servers started")
		exitwithstatus.Message("no servers started")
	}

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}
