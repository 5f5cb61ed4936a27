package boltstore_test

import (
	"path/filepath"
	"testing"

	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaintope/tapyrus-spv/chain"
	"github.com/chaintope/tapyrus-spv/chain/boltstore"
	"github.com/chaintope/tapyrus-spv/internal/testfixture"
)

func TestInitializeIsIdempotent(t *testing.T) {
	s, err := boltstore.Open(filepath.Join(t.TempDir(), "headers.db"))
	require.Nil(t, err)
	defer s.Close()

	genesis := testfixture.GenesisBlock()
	require.Nil(t, s.Initialize(genesis))
	require.Nil(t, s.Initialize(genesis))

	tip, err := s.Tip()
	require.Nil(t, err)
	assert.EqualValues(t, 0, tip.Height)
	assert.Equal(t, genesis.Header.BlockHash(), tip.Hash())
}

func TestPutGetAtHeightAndClear(t *testing.T) {
	s, err := boltstore.Open(filepath.Join(t.TempDir(), "headers.db"))
	require.Nil(t, err)
	defer s.Close()

	require.Nil(t, s.Initialize(testfixture.GenesisBlock()))

	for i, header := range testfixture.Headers(1, 5) {
		height := int32(i + 1)
		bi := &chain.BlockIndex{Header: *header, Height: height}
		require.Nil(t, s.Put(bi))
		require.Nil(t, s.SetHeightIndex(height, bi.Hash()))
		require.Nil(t, s.UpdateTip(bi.Hash()))
	}

	got, found, err := s.GetAtHeight(3)
	require.Nil(t, err)
	require.True(t, found)
	assert.EqualValues(t, 3, got.Height)

	require.Nil(t, s.ClearHeightIndexAbove(3))

	_, found, err = s.GetAtHeight(4)
	require.Nil(t, err)
	assert.False(t, found)

	_, found, err = s.GetAtHeight(3)
	require.Nil(t, err)
	assert.True(t, found)
}

// TestReopenAfterCloseSurvivesRestart covers the restart-after-persistence
// scenario: headers written before a close must still be there, with tip
// and height intact, after reopening the same database file.
func TestReopenAfterCloseSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "headers.db")

	s, err := boltstore.Open(path)
	require.Nil(t, err)
	require.Nil(t, s.Initialize(testfixture.GenesisBlock()))

	headers := testfixture.Headers(1, 10)
	var lastHash = headers[len(headers)-1].BlockHash()
	for i, header := range headers {
		height := int32(i + 1)
		bi := &chain.BlockIndex{Header: *header, Height: height}
		require.Nil(t, s.Put(bi))
		require.Nil(t, s.SetHeightIndex(height, bi.Hash()))
		require.Nil(t, s.UpdateTip(bi.Hash()))
	}
	require.Nil(t, s.Close())

	reopened, err := boltstore.Open(path)
	require.Nil(t, err)
	defer reopened.Close()

	tip, err := reopened.Tip()
	require.Nil(t, err)
	assert.EqualValues(t, 10, tip.Height)
	assert.Equal(t, lastHash, tip.Hash())

	bi, found, err := reopened.GetAtHeight(5)
	require.Nil(t, err)
	require.True(t, found)
	assert.Equal(t, headers[4].BlockHash(), bi.Hash())

	genesisIndex, found, err := reopened.GetAtHeight(0)
	require.Nil(t, err)
	require.True(t, found)
	assert.EqualValues(t, 0, genesisIndex.Height)
}

// TestInitializeRejectsMismatchedGenesisOnReopen covers reopening a store
// whose tip is already set and calling Initialize with a different genesis
// block than the one it was created with.
func TestInitializeRejectsMismatchedGenesisOnReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "headers.db")

	s, err := boltstore.Open(path)
	require.Nil(t, err)
	require.Nil(t, s.Initialize(testfixture.GenesisBlock()))
	require.Nil(t, s.Close())

	reopened, err := boltstore.Open(path)
	require.Nil(t, err)
	defer reopened.Close()

	other := &wire.MsgBlock{Header: *testfixture.Headers(1, 1)[0]}
	initErr := reopened.Initialize(other)
	require.NotNil(t, initErr)
	assert.True(t, chain.ErrStoreConsistency.Is(initErr))

	tip, tipErr := reopened.Tip()
	require.Nil(t, tipErr)
	assert.Equal(t, testfixture.Genesis().BlockHash(), tip.Hash())
}
