// Copyright (c) 2019 Chaintope Inc.
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package chain

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/chaintope/tapyrus-spv/er"
	"github.com/chaintope/tapyrus-spv/spvlog"
)

// maxLocatorHashes bounds the locator the way the wire protocol itself
// does, so a very long-lived chain can't produce an unbounded GetHeaders
// payload.
const maxLocatorHashes = wire.MaxBlockLocatorsPerMsg

// Chain is the active header chain. It exclusively owns a ChainStore and
// exposes the operations the rest of the client needs: extension,
// reorganization, locator generation, and height/hash lookup.
type Chain struct {
	store ChainStore
}

// New wraps an already-initialized ChainStore in a Chain. Callers must call
// store.Initialize(genesis) before constructing a Chain, or before the
// first call to Tip.
func New(store ChainStore) *Chain {
	return &Chain{store: store}
}

// Store returns the underlying ChainStore, e.g. so a caller can Close it.
func (c *Chain) Store() ChainStore {
	return c.store
}

// Tip returns the current active-chain tip. Never fails once the store has
// been initialized with a genesis block.
func (c *Chain) Tip() (*BlockIndex, er.R) {
	return c.store.Tip()
}

// Height is an alias for Tip().Height.
func (c *Chain) Height() (int32, er.R) {
	tip, err := c.store.Tip()
	if err != nil {
		return 0, err
	}
	return tip.Height, nil
}

// GetBlockHash performs a dense lookup on the active chain.
func (c *Chain) GetBlockHash(height int32) (chainhash.Hash, bool, er.R) {
	bi, ok, err := c.store.GetAtHeight(height)
	if err != nil || !ok {
		return chainhash.Hash{}, ok, err
	}
	return bi.Hash(), true, nil
}

// GetBlockIndex looks up a BlockIndex anywhere known to the store, whether
// or not it is on the active chain.
func (c *Chain) GetBlockIndex(hash chainhash.Hash) (*BlockIndex, bool, er.R) {
	return c.store.Get(hash)
}

// ConnectBlockHeader admits one header into the chain.
func (c *Chain) ConnectBlockHeader(header wire.BlockHeader) (*BlockIndex, er.R) {
	hash := header.BlockHash()

	if existing, ok, err := c.store.Get(hash); err != nil {
		return nil, err
	} else if ok {
		// Idempotent: re-applying a known header is a no-op.
		return existing, nil
	}

	parent, ok, err := c.store.Get(header.PrevBlock)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrOrphanHeader.New(hash.String(), nil)
	}

	candidate := &BlockIndex{
		Header: header,
		Height: parent.Height + 1,
	}
	if err := c.store.Put(candidate); err != nil {
		return nil, err
	}

	tip, err := c.store.Tip()
	if err != nil {
		return nil, err
	}

	switch {
	case candidate.Height > tip.Height:
		if err := c.extendOrReorg(tip, candidate); err != nil {
			return nil, err
		}
	case candidate.Height == tip.Height:
		// First-seen tie-break: never switch the tip at equal height.
	default:
		// Shorter than the tip: stored, but the active chain is untouched.
	}

	return candidate, nil
}

// extendOrReorg makes candidate the new tip, either by the fast extend path
// (candidate builds directly on the current tip) or by a full reorg that
// walks back to the fork point and rewrites the height index and
// next_blockhash pointers for the newly active branch.
func (c *Chain) extendOrReorg(tip, candidate *BlockIndex) er.R {
	candidateHash := candidate.Hash()

	if candidate.Header.PrevBlock == tip.Hash() {
		tip.NextBlockHash = candidateHash
		if err := c.store.Put(tip); err != nil {
			return err
		}
		if err := c.store.SetHeightIndex(candidate.Height, candidateHash); err != nil {
			return err
		}
		return c.store.UpdateTip(candidateHash)
	}

	spvlog.CHST().Debugf("Reorganizing chain from height %d to %d", tip.Height, candidate.Height)

	fork, err := c.ancestor(candidate, tip)
	if err != nil {
		return err
	}

	// Clear next_blockhash on the superseded branch, walking from the old
	// tip's parent down to and including the fork point (the fork's pointer
	// is rewritten for the new branch below).
	cur := tip
	for cur.Height > fork.Height {
		prev, ok, err := c.store.Get(cur.Header.PrevBlock)
		if err != nil {
			return err
		}
		if !ok {
			return ErrStoreConsistency.New(cur.Header.PrevBlock.String(), nil)
		}
		prev.NextBlockHash = chainhash.Hash{}
		if err := c.store.Put(prev); err != nil {
			return err
		}
		cur = prev
	}
	if err := c.store.ClearHeightIndexAbove(fork.Height); err != nil {
		return err
	}

	// Collect the new branch from candidate back to (not including) fork.
	var branch []*BlockIndex
	cur = candidate
	for cur.Hash() != fork.Hash() {
		branch = append(branch, cur)
		prev, ok, err := c.store.Get(cur.Header.PrevBlock)
		if err != nil {
			return err
		}
		if !ok {
			return ErrStoreConsistency.New(cur.Header.PrevBlock.String(), nil)
		}
		cur = prev
	}

	// Write the new branch in ascending-height order, oldest first, so
	// each predecessor's next_blockhash can be set as we go.
	predecessor := fork
	for i := len(branch) - 1; i >= 0; i-- {
		node := branch[i]
		nodeHash := node.Hash()
		if err := c.store.SetHeightIndex(node.Height, nodeHash); err != nil {
			return err
		}
		predecessor.NextBlockHash = nodeHash
		if err := c.store.Put(predecessor); err != nil {
			return err
		}
		predecessor = node
	}

	return c.store.UpdateTip(candidateHash)
}

// ancestor walks the deeper of a and b back to the shallower one's height,
// then walks both back in lockstep until their hashes coincide.
func (c *Chain) ancestor(a, b *BlockIndex) (*BlockIndex, er.R) {
	x, y := a, b
	var err er.R
	for x.Height > y.Height {
		if x, err = c.prevOf(x); err != nil {
			return nil, err
		}
	}
	for y.Height > x.Height {
		if y, err = c.prevOf(y); err != nil {
			return nil, err
		}
	}
	for x.Hash() != y.Hash() {
		if x, err = c.prevOf(x); err != nil {
			return nil, err
		}
		if y, err = c.prevOf(y); err != nil {
			return nil, err
		}
	}
	return x, nil
}

func (c *Chain) prevOf(bi *BlockIndex) (*BlockIndex, er.R) {
	prev, ok, err := c.store.Get(bi.Header.PrevBlock)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrStoreConsistency.New(bi.Header.PrevBlock.String(), nil)
	}
	return prev, nil
}

// GetLocator produces the descending, sparse hash sequence getheaders uses
// to find a common ancestor with a peer. The step between entries is 1 for
// the first ten entries, then doubles on every subsequent entry; genesis is
// always the final element.
func (c *Chain) GetLocator() ([]chainhash.Hash, er.R) {
	tip, err := c.store.Tip()
	if err != nil {
		return nil, err
	}

	locator := make([]chainhash.Hash, 0, 32)
	height := tip.Height
	step := int32(1)
	stepsTaken := 0

	for {
		bi, ok, err := c.store.GetAtHeight(height)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrStoreConsistency.New("missing height-index entry", nil)
		}
		locator = append(locator, bi.Hash())

		if height == 0 || len(locator) >= maxLocatorHashes {
			break
		}

		if stepsTaken >= 10 {
			step *= 2
		}
		if step >= height {
			height = 0
		} else {
			height -= step
		}
		stepsTaken++
	}

	return locator, nil
}
