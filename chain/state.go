// Copyright (c) 2019 Chaintope Inc.
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package chain

import (
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/chaintope/tapyrus-spv/er"
)

// State is the concurrency-safe handle onto a Chain. Every access path to
// the chain's mutable state goes through State's mutex; no goroutine ever
// holds it across a network I/O or other suspension point.
type State struct {
	mu    sync.Mutex
	chain *Chain
}

// NewState wraps a Chain in a State.
func NewState(c *Chain) *State {
	return &State{chain: c}
}

// Tip returns the current tip under lock.
func (s *State) Tip() (*BlockIndex, er.R) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chain.Tip()
}

// Height returns the current height under lock.
func (s *State) Height() (int32, er.R) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chain.Height()
}

// GetBlockHash looks up the active-chain hash at height, under lock.
func (s *State) GetBlockHash(height int32) (chainhash.Hash, bool, er.R) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chain.GetBlockHash(height)
}

// GetBlockIndex looks up a BlockIndex by hash, under lock.
func (s *State) GetBlockIndex(hash chainhash.Hash) (*BlockIndex, bool, er.R) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chain.GetBlockIndex(hash)
}

// GetLocator builds a block locator for the current tip, under lock.
func (s *State) GetLocator() ([]chainhash.Hash, er.R) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chain.GetLocator()
}

// ConnectBlockHeader admits one header under lock.
func (s *State) ConnectBlockHeader(header wire.BlockHeader) (*BlockIndex, er.R) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chain.ConnectBlockHeader(header)
}

// ConnectBlockHeaders admits a whole batch of headers under a single lock
// acquisition, matching the driver's one-message-one-lock contract. A
// header that fails to connect (e.g. ErrOrphanHeader) does not abort the
// rest of the batch; its error is reported via onErr.
func (s *State) ConnectBlockHeaders(headers []wire.BlockHeader, onErr func(wire.BlockHeader, er.R)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, header := range headers {
		if _, err := s.chain.ConnectBlockHeader(header); err != nil {
			if onErr != nil {
				onErr(header, err)
			}
		}
	}
}

// Close releases the underlying store.
func (s *State) Close() er.R {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chain.Store().Close()
}
