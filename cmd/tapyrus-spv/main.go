// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2019 Chaintope Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command tapyrus-spv is a header-only SPV client: it connects to a single
// full node, performs the version handshake, and downloads the node's
// header chain, persisting it to a local database.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/chaintope/tapyrus-spv/blockheaderdownload"
	"github.com/chaintope/tapyrus-spv/chain"
	"github.com/chaintope/tapyrus-spv/chain/boltstore"
	"github.com/chaintope/tapyrus-spv/chain/memstore"
	"github.com/chaintope/tapyrus-spv/chaincfg"
	"github.com/chaintope/tapyrus-spv/er"
	"github.com/chaintope/tapyrus-spv/peer"
	"github.com/chaintope/tapyrus-spv/spvlog"
	"github.com/chaintope/tapyrus-spv/version"
)

func appName() string {
	return version.String()
}

func main() {
	if err := realMain(); err != nil {
		fmt.Fprintln(os.Stderr, err.String())
		os.Exit(1)
	}
}

func realMain() er.R {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	params, ok := chaincfg.ByName(cfg.Network)
	if !ok {
		return er.Errorf("unknown network %q", cfg.Network)
	}

	store, err := openStore(cfg, params)
	if err != nil {
		return err
	}
	if err := store.Initialize(params.GenesisBlock); err != nil {
		return err
	}

	state := chain.NewState(chain.New(store))
	defer func() {
		if err := state.Close(); err != nil {
			spvlog.CHST().Errorf("closing chain store: %s", err.Message())
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt)
		<-interrupt
		spvlog.PEER().Info("received interrupt, shutting down")
		cancel()
	}()

	spvlog.PEER().Infof("connecting to %s", cfg.Peer)
	p, err := peer.Dial(ctx, cfg.Peer, params.Net, 1)
	if err != nil {
		return err
	}
	defer func() {
		if err := p.Close(); err != nil {
			spvlog.PEER().Warnf("closing connection: %s", err.Message())
		}
	}()

	if err := peer.Handshake(p); err != nil {
		return err
	}
	spvlog.PEER().Infof("handshake complete with %s, user agent %q", p.Addr, p.Version.UserAgent)

	download := blockheaderdownload.New(p, state)
	download.MaxHeaderResults = cfg.MaxHeaders
	if err := download.Run(ctx); err != nil {
		return err
	}

	height, err := state.Height()
	if err != nil {
		return err
	}
	spvlog.PEER().Infof("header sync complete, tip height %d", height)

	return nil
}

func openStore(cfg *config, params *chaincfg.Params) (chain.ChainStore, er.R) {
	if cfg.MemDB {
		return memstore.New(), nil
	}

	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return nil, er.E(err)
	}
	dbPath := filepath.Join(cfg.DataDir, params.Name+"-headers.db")
	return boltstore.Open(dbPath)
}
