// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/harvestmark-inc/harvestmarkd/access"
	"github.com/harvestmark-inc/harvestmarkd/height"
	"github.com/harvestmark-inc/harvestmarkd/identity"
	"github.com/harvestmark-inc/harvestmarkd/mode"
	"github.com/harvestmark-inc/harvestmarkd/registry"
	"github.com/harvestmark-inc/harvestmarkd/rpc"
	"github.com/harvestmark-inc/harvestmarkd/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

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

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
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
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// the protocol authority must be configured
	authority, err := identity.FromBase58(theConfiguration.Authority)
	if nil != err {
		log.Criticalf("invalid authority: %q  error: %s", theConfiguration.Authority, err)
		exitwithstatus.Message("%s: invalid authority: %q  error: %s", program, theConfiguration.Authority, err)
	}

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

	// set the initial system mode - before any background tasks are started
	err = mode.Initialise()
	if nil != err {
		log.Criticalf("mode initialise error: %s", err)
		exitwithstatus.Message("mode initialise error: %s", err)
	}
	defer mode.Finalise()

	// general info
	log.Infof("database: %q", theConfiguration.Database.Name)
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	// the ledger height ticker
	log.Info("initialise height")
	err = height.Initialise(storage.Pool.Controls, time.Duration(theConfiguration.HeightInterval)*time.Second)
	if nil != err {
		log.Criticalf("height initialise error: %s", err)
		exitwithstatus.Message("height initialise error: %s", err)
	}
	defer height.Finalise()

	// the access grant matrix
	log.Info("initialise access")
	err = access.Initialise(storage.Pool.Access)
	if nil != err {
		log.Criticalf("access initialise error: %s", err)
		exitwithstatus.Message("access initialise error: %s", err)
	}
	defer access.Finalise()

	// the ledger operations
	log.Info("initialise registry")
	err = registry.Initialise(storage.Pool.Records, storage.Pool.Controls, authority)
	if nil != err {
		log.Criticalf("registry initialise error: %s", err)
		exitwithstatus.Message("registry initialise error: %s", err)
	}
	defer registry.Finalise()

	// the certificate and key are file names in the configuration,
	// load them here so the rpc layer only sees PEM data
	rpcConfiguration := theConfiguration.ClientRPC
	certificatePEM, err := ioutil.ReadFile(rpcConfiguration.Certificate)
	if nil != err {
		log.Criticalf("certificate: %q  error: %s", rpcConfiguration.Certificate, err)
		exitwithstatus.Message("certificate: %q  error: %s", rpcConfiguration.Certificate, err)
	}
	privateKeyPEM, err := ioutil.ReadFile(rpcConfiguration.PrivateKey)
	if nil != err {
		log.Criticalf("private key: %q  error: %s", rpcConfiguration.PrivateKey, err)
		exitwithstatus.Message("private key: %q  error: %s", rpcConfiguration.PrivateKey, err)
	}
	rpcConfiguration.Certificate = string(certificatePEM)
	rpcConfiguration.PrivateKey = string(privateKeyPEM)

	// start up the rpc background processes
	err = rpc.Initialise(&rpcConfiguration, version)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	// a single process ledger has nothing to synchronise with
	mode.Set(mode.Normal)

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
	mode.Set(mode.Stopped)
}
