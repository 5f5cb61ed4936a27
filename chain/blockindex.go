// Copyright (c) 2019 Chaintope Inc.
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package chain

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// BlockIndex is a persisted record: a header, its height on the chain it
// was first connected to, and a denormalized forward pointer to its
// successor on the active chain (the zero hash when this record is the tip
// or isn't on the active chain).
type BlockIndex struct {
	Header        wire.BlockHeader
	Height        int32
	NextBlockHash chainhash.Hash
}

// Hash returns the double-SHA-256 hash of the record's header.
func (b *BlockIndex) Hash() chainhash.Hash {
	return b.Header.BlockHash()
}

// HasNext reports whether NextBlockHash is populated.
func (b *BlockIndex) HasNext() bool {
	return b.NextBlockHash != (chainhash.Hash{})
}
