// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2019 Chaintope Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"

	flags "github.com/jessevdk/go-flags"

	"github.com/chaintope/tapyrus-spv/er"
	"github.com/chaintope/tapyrus-spv/spvlog"
)

const (
	defaultDataDir    = "data"
	defaultLogLevel   = "info"
	defaultNetwork    = "mainnet"
	defaultMaxHeaders = 2000
)

// config holds the command-line options for tapyrus-spv. The flag set is
// deliberately narrow: this client has no RPC server, no mempool, no
// mining, and no indexers to configure.
type config struct {
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	Peer        string `short:"p" long:"peer" description:"Address (host:port) of the full node to sync headers from" required:"true"`
	DataDir     string `short:"b" long:"datadir" description:"Directory to store the header chain database"`
	Network     string `short:"n" long:"network" description:"Network to connect to {mainnet, testnet3, regtest, simnet}"`
	MemDB       bool   `long:"memdb" description:"Use an in-memory chain store instead of a persistent one (state is lost on exit)"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,..."`
	MaxHeaders  int    `long:"maxheaders" description:"Maximum number of headers a peer may send in one batch before it is treated as malicious"`
}

// loadConfig parses the command line, fills in defaults, and sets the
// initial log levels: parse first, configure logging immediately after, so
// early errors are still reported through the normal logger.
func loadConfig() (*config, er.R) {
	cfg := config{
		DataDir:    defaultDataDir,
		Network:    defaultNetwork,
		DebugLevel: defaultLogLevel,
		MaxHeaders: defaultMaxHeaders,
	}

	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, er.E(err)
	}

	if cfg.ShowVersion {
		fmt.Println(appName())
		os.Exit(0)
	}

	for _, part := range strings.Split(cfg.DebugLevel, ",") {
		fields := strings.SplitN(part, "=", 2)
		if len(fields) == 2 {
			spvlog.SetLogLevel(fields[0], fields[1])
		} else {
			spvlog.SetLogLevels(part)
		}
	}

	return &cfg, nil
}
