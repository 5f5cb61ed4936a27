// Copyright (c) 2019 Chaintope Inc.
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package chain

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/chaintope/tapyrus-spv/er"
)

// ChainStore is the persistence capability Chain is built on. Two
// implementations exist: chain/memstore (two maps and a tip hash) and
// chain/boltstore (a go.etcd.io/bbolt-backed variant). Both must provide
// identical semantics.
type ChainStore interface {
	// Initialize is idempotent: if the store is empty it inserts a
	// BlockIndex at height 0 for genesis and sets the tip to its hash;
	// otherwise it verifies the stored genesis matches and leaves state
	// untouched, failing if it doesn't.
	Initialize(genesis *wire.MsgBlock) er.R

	// Get looks up a BlockIndex by hash, anywhere known to the store.
	Get(hash chainhash.Hash) (bi *BlockIndex, found bool, err er.R)

	// GetAtHeight looks up a BlockIndex by height on the active chain.
	GetAtHeight(height int32) (bi *BlockIndex, found bool, err er.R)

	// Put upserts a BlockIndex by hash.
	Put(bi *BlockIndex) er.R

	// UpdateTip sets the tip pointer.
	UpdateTip(hash chainhash.Hash) er.R

	// SetHeightIndex maps height to hash in the active-chain height index.
	SetHeightIndex(height int32, hash chainhash.Hash) er.R

	// ClearHeightIndexAbove removes every height index entry with height
	// strictly greater than the given height, used when a reorg discards
	// the superseded branch's descent.
	ClearHeightIndexAbove(height int32) er.R

	// Tip returns the current active-chain tip. Fails only before
	// Initialize has run.
	Tip() (*BlockIndex, er.R)

	// Close releases any resources held by the store (a no-op for the
	// in-memory variant; closes the underlying database file for the
	// persistent variant).
	Close() er.R
}
