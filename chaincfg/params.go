// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines the per-network parameters the chain needs at
// startup: its genesis block and the magic bytes that prefix every wire
// frame on that network.
package chaincfg

import (
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// Params groups the constants an SPV client needs to know about a network.
// This is deliberately a small subset of a full node's chaincfg.Params: no
// checkpoints, no consensus deployments, no difficulty parameters, since
// this client performs no block-body or difficulty validation.
type Params struct {
	// Name is the human-readable network identifier, e.g. "mainnet".
	Name string

	// Net is the magic 4 bytes prefixing every wire frame on this network.
	Net wire.BitcoinNet

	// GenesisBlock is the network's height-0 block.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the hash of GenesisBlock's header.
	GenesisHash *chainhash.Hash
}

// MainNetParams are the parameters for the production network.
var MainNetParams = Params{
	Name:         "mainnet",
	Net:          chaincfg.MainNetParams.Net,
	GenesisBlock: chaincfg.MainNetParams.GenesisBlock,
	GenesisHash:  chaincfg.MainNetParams.GenesisHash,
}

// TestNet3Params are the parameters for the public test network.
var TestNet3Params = Params{
	Name:         "testnet3",
	Net:          chaincfg.TestNet3Params.Net,
	GenesisBlock: chaincfg.TestNet3Params.GenesisBlock,
	GenesisHash:  chaincfg.TestNet3Params.GenesisHash,
}

// RegressionNetParams are the parameters for the regression test network
// used by this module's embedded header fixture.
var RegressionNetParams = Params{
	Name:         "regtest",
	Net:          chaincfg.RegressionNetParams.Net,
	GenesisBlock: chaincfg.RegressionNetParams.GenesisBlock,
	GenesisHash:  chaincfg.RegressionNetParams.GenesisHash,
}

// SimNetParams are the parameters for the local simulation network.
var SimNetParams = Params{
	Name:         "simnet",
	Net:          chaincfg.SimNetParams.Net,
	GenesisBlock: chaincfg.SimNetParams.GenesisBlock,
	GenesisHash:  chaincfg.SimNetParams.GenesisHash,
}

// ByName resolves one of the four networks above by its Name, for use when
// parsing the --network configuration flag.
func ByName(name string) (*Params, bool) {
	switch name {
	case MainNetParams.Name:
		return &MainNetParams, true
	case TestNet3Params.Name:
		return &TestNet3Params, true
	case RegressionNetParams.Name:
		return &RegressionNetParams, true
	case SimNetParams.Name:
		return &SimNetParams, true
	default:
		return nil, false
	}
}
