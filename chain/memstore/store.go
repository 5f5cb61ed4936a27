// Package memstore is an in-memory chain.ChainStore, useful for tests and
// for running the client with --memdb.
package memstore

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/chaintope/tapyrus-spv/chain"
	"github.com/chaintope/tapyrus-spv/er"
)

// Store is a chain.ChainStore backed by two maps and a tip pointer. Not
// safe for concurrent use by itself; chain.State provides the locking.
type Store struct {
	byHash   map[chainhash.Hash]*chain.BlockIndex
	byHeight map[int32]chainhash.Hash
	tip      chainhash.Hash
	init     bool
}

// New returns an empty, uninitialized Store.
func New() *Store {
	return &Store{
		byHash:   make(map[chainhash.Hash]*chain.BlockIndex),
		byHeight: make(map[int32]chainhash.Hash),
	}
}

func (s *Store) Initialize(genesis *wire.MsgBlock) er.R {
	genesisHash := genesis.Header.BlockHash()

	if s.init {
		if existing, ok := s.byHeight[0]; ok && existing != genesisHash {
			return chain.ErrStoreConsistency.New("store genesis does not match", nil)
		}
		return nil
	}

	bi := &chain.BlockIndex{Header: genesis.Header, Height: 0}
	s.byHash[genesisHash] = bi
	s.byHeight[0] = genesisHash
	s.tip = genesisHash
	s.init = true
	return nil
}

func (s *Store) Get(hash chainhash.Hash) (*chain.BlockIndex, bool, er.R) {
	bi, ok := s.byHash[hash]
	return bi, ok, nil
}

func (s *Store) GetAtHeight(height int32) (*chain.BlockIndex, bool, er.R) {
	hash, ok := s.byHeight[height]
	if !ok {
		return nil, false, nil
	}
	bi, ok := s.byHash[hash]
	return bi, ok, nil
}

func (s *Store) Put(bi *chain.BlockIndex) er.R {
	cp := *bi
	s.byHash[bi.Hash()] = &cp
	return nil
}

func (s *Store) UpdateTip(hash chainhash.Hash) er.R {
	s.tip = hash
	return nil
}

func (s *Store) SetHeightIndex(height int32, hash chainhash.Hash) er.R {
	s.byHeight[height] = hash
	return nil
}

func (s *Store) ClearHeightIndexAbove(height int32) er.R {
	for h := range s.byHeight {
		if h > height {
			delete(s.byHeight, h)
		}
	}
	return nil
}

func (s *Store) Tip() (*chain.BlockIndex, er.R) {
	bi, ok := s.byHash[s.tip]
	if !ok {
		return nil, chain.ErrStoreConsistency.New("tip not found in store", nil)
	}
	return bi, nil
}

func (s *Store) Close() er.R {
	return nil
}
