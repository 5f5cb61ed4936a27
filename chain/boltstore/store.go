// Package boltstore is a go.etcd.io/bbolt-backed chain.ChainStore, used for
// durable operation across restarts. The bucket layout is modeled on
// neutrino/headerfs's flat index-record design: each record is the fixed
// concatenation of a serialized header with its height and successor hash,
// rather than a second decode pass through encoding/gob or similar.
package boltstore

import (
	"bytes"
	"encoding/binary"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	bolt "go.etcd.io/bbolt"

	"github.com/chaintope/tapyrus-spv/chain"
	"github.com/chaintope/tapyrus-spv/er"
)

var (
	headersBucket  = []byte("headers")
	hdrBucket      = []byte("hdr")      // hash -> height(4) || header(80) || next_blockhash(32)
	byHeightBucket = []byte("byheight") // height(4, big endian) -> hash(32)
	tipKey         = []byte("tip")
)

const recordLen = 4 + 80 + chainhash.HashSize

// Store is a chain.ChainStore backed by a bbolt database file.
type Store struct {
	db *bolt.DB
}

// Open opens (creating if necessary) a bbolt database at path and returns
// a Store over it. The caller must still call Initialize with a genesis
// block before using it as a chain.ChainStore.
func Open(path string) (*Store, er.R) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, chain.Err.New("opening chain store database", er.E(err))
	}

	txErr := db.Update(func(tx *bolt.Tx) error {
		top, err := tx.CreateBucketIfNotExists(headersBucket)
		if err != nil {
			return err
		}
		if _, err := top.CreateBucketIfNotExists(hdrBucket); err != nil {
			return err
		}
		_, err = top.CreateBucketIfNotExists(byHeightBucket)
		return err
	})
	if txErr != nil {
		return nil, chain.Err.New("provisioning chain store buckets", er.E(txErr))
	}

	return &Store{db: db}, nil
}

func heightKey(height int32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(height))
	return b[:]
}

func encodeRecord(bi *chain.BlockIndex) ([]byte, er.R) {
	var buf bytes.Buffer
	var h [4]byte
	binary.BigEndian.PutUint32(h[:], uint32(bi.Height))
	buf.Write(h[:])
	if err := bi.Header.Serialize(&buf); err != nil {
		return nil, chain.Err.New("serializing header", er.E(err))
	}
	buf.Write(bi.NextBlockHash[:])
	return buf.Bytes(), nil
}

func decodeRecord(hash chainhash.Hash, raw []byte) (*chain.BlockIndex, er.R) {
	if len(raw) != recordLen {
		return nil, chain.ErrStoreConsistency.New("malformed chain store record", nil)
	}
	height := int32(binary.BigEndian.Uint32(raw[:4]))

	var header wire.BlockHeader
	if err := header.Deserialize(bytes.NewReader(raw[4 : 4+80])); err != nil {
		return nil, chain.Err.New("deserializing header", er.E(err))
	}

	var next chainhash.Hash
	copy(next[:], raw[4+80:])

	bi := &chain.BlockIndex{Header: header, Height: height, NextBlockHash: next}
	if bi.Hash() != hash {
		return nil, chain.ErrStoreConsistency.New("stored hash key mismatch", nil)
	}
	return bi, nil
}

func (s *Store) Initialize(genesis *wire.MsgBlock) er.R {
	genesisHash := genesis.Header.BlockHash()

	txErr := s.db.Update(func(tx *bolt.Tx) error {
		top := tx.Bucket(headersBucket)
		tip := top.Get(tipKey)
		if tip != nil {
			existingHash := top.Bucket(byHeightBucket).Get(heightKey(0))
			if existingHash != nil && !bytes.Equal(existingHash, genesisHash[:]) {
				return chain.ErrStoreConsistency.New("store genesis does not match", nil).Native()
			}
			return nil
		}

		bi := &chain.BlockIndex{Header: genesis.Header, Height: 0}
		record, eerr := encodeRecord(bi)
		if eerr != nil {
			return eerr.Native()
		}
		if err := top.Bucket(hdrBucket).Put(genesisHash[:], record); err != nil {
			return err
		}
		if err := top.Bucket(byHeightBucket).Put(heightKey(0), genesisHash[:]); err != nil {
			return err
		}
		return top.Put(tipKey, genesisHash[:])
	})
	if txErr != nil {
		return er.E(txErr)
	}
	return nil
}

func (s *Store) Get(hash chainhash.Hash) (bi *chain.BlockIndex, found bool, err er.R) {
	txErr := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(headersBucket).Bucket(hdrBucket).Get(hash[:])
		if raw == nil {
			return nil
		}
		found = true
		var derr er.R
		bi, derr = decodeRecord(hash, raw)
		if derr != nil {
			return derr.Native()
		}
		return nil
	})
	if txErr != nil {
		return nil, false, er.E(txErr)
	}
	return bi, found, nil
}

func (s *Store) GetAtHeight(height int32) (bi *chain.BlockIndex, found bool, err er.R) {
	txErr := s.db.View(func(tx *bolt.Tx) error {
		top := tx.Bucket(headersBucket)
		hash := top.Bucket(byHeightBucket).Get(heightKey(height))
		if hash == nil {
			return nil
		}
		raw := top.Bucket(hdrBucket).Get(hash)
		if raw == nil {
			return chain.ErrStoreConsistency.New("height index points to missing header", nil).Native()
		}
		found = true
		var h chainhash.Hash
		copy(h[:], hash)
		var derr er.R
		bi, derr = decodeRecord(h, raw)
		if derr != nil {
			return derr.Native()
		}
		return nil
	})
	if txErr != nil {
		return nil, false, er.E(txErr)
	}
	return bi, found, nil
}

func (s *Store) Put(bi *chain.BlockIndex) er.R {
	record, err := encodeRecord(bi)
	if err != nil {
		return err
	}
	hash := bi.Hash()

	txErr := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(headersBucket).Bucket(hdrBucket).Put(hash[:], record)
	})
	if txErr != nil {
		return chain.Err.New("writing chain store record", er.E(txErr))
	}
	return nil
}

func (s *Store) UpdateTip(hash chainhash.Hash) er.R {
	txErr := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(headersBucket).Put(tipKey, hash[:])
	})
	if txErr != nil {
		return chain.Err.New("updating tip", er.E(txErr))
	}
	return nil
}

func (s *Store) SetHeightIndex(height int32, hash chainhash.Hash) er.R {
	txErr := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(headersBucket).Bucket(byHeightBucket).Put(heightKey(height), hash[:])
	})
	if txErr != nil {
		return chain.Err.New("updating height index", er.E(txErr))
	}
	return nil
}

func (s *Store) ClearHeightIndexAbove(height int32) er.R {
	txErr := s.db.Update(func(tx *bolt.Tx) error {
		byHeight := tx.Bucket(headersBucket).Bucket(byHeightBucket)
		c := byHeight.Cursor()
		var stale [][]byte
		for k, _ := c.Seek(heightKey(height + 1)); k != nil; k, _ = c.Next() {
			key := make([]byte, len(k))
			copy(key, k)
			stale = append(stale, key)
		}
		for _, k := range stale {
			if err := byHeight.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return chain.Err.New("clearing height index", er.E(txErr))
	}
	return nil
}

func (s *Store) Tip() (*chain.BlockIndex, er.R) {
	var hash chainhash.Hash
	var raw []byte

	txErr := s.db.View(func(tx *bolt.Tx) error {
		top := tx.Bucket(headersBucket)
		tipHash := top.Get(tipKey)
		if tipHash == nil {
			return chain.ErrStoreConsistency.New("store has no tip; call Initialize first", nil).Native()
		}
		copy(hash[:], tipHash)
		raw = top.Bucket(hdrBucket).Get(tipHash)
		if raw == nil {
			return chain.ErrStoreConsistency.New("tip hash has no header record", nil).Native()
		}
		// raw must be copied out; bbolt's byte slices are only valid for the
		// lifetime of the transaction.
		cp := make([]byte, len(raw))
		copy(cp, raw)
		raw = cp
		return nil
	})
	if txErr != nil {
		return nil, er.E(txErr)
	}

	return decodeRecord(hash, raw)
}

func (s *Store) Close() er.R {
	if err := s.db.Close(); err != nil {
		return chain.Err.New("closing chain store database", er.E(err))
	}
	return nil
}
