package memstore_test

import (
	"testing"

	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaintope/tapyrus-spv/chain"
	"github.com/chaintope/tapyrus-spv/chain/memstore"
	"github.com/chaintope/tapyrus-spv/internal/testfixture"
)

func TestInitializeIsIdempotent(t *testing.T) {
	s := memstore.New()
	genesis := testfixture.GenesisBlock()

	require.Nil(t, s.Initialize(genesis))
	require.Nil(t, s.Initialize(genesis)) // second call on the same genesis is a no-op

	tip, err := s.Tip()
	require.Nil(t, err)
	assert.EqualValues(t, 0, tip.Height)
	assert.Equal(t, genesis.Header.BlockHash(), tip.Hash())
}

func TestInitializeRejectsMismatchedGenesis(t *testing.T) {
	s := memstore.New()
	require.Nil(t, s.Initialize(testfixture.GenesisBlock()))

	other := &wire.MsgBlock{Header: *testfixture.Headers(1, 1)[0]}
	err := s.Initialize(other)
	require.NotNil(t, err)
	assert.True(t, chain.ErrStoreConsistency.Is(err))

	// the original genesis must still be the one on record
	tip, tipErr := s.Tip()
	require.Nil(t, tipErr)
	assert.Equal(t, testfixture.Genesis().BlockHash(), tip.Hash())
}

func TestPutAndGetRoundTrip(t *testing.T) {
	s := memstore.New()
	require.Nil(t, s.Initialize(testfixture.GenesisBlock()))

	header := testfixture.Headers(1, 1)[0]
	bi := &chain.BlockIndex{Header: *header, Height: 1}
	require.Nil(t, s.Put(bi))

	got, found, err := s.Get(bi.Hash())
	require.Nil(t, err)
	require.True(t, found)
	assert.Equal(t, bi.Hash(), got.Hash())
	assert.EqualValues(t, 1, got.Height)

	_, found, err = s.Get(testfixture.Headers(2, 1)[0].BlockHash())
	require.Nil(t, err)
	assert.False(t, found)
}

func TestGetAtHeightFollowsHeightIndex(t *testing.T) {
	s := memstore.New()
	require.Nil(t, s.Initialize(testfixture.GenesisBlock()))

	header := testfixture.Headers(1, 1)[0]
	bi := &chain.BlockIndex{Header: *header, Height: 1}
	require.Nil(t, s.Put(bi))
	require.Nil(t, s.SetHeightIndex(1, bi.Hash()))

	got, found, err := s.GetAtHeight(1)
	require.Nil(t, err)
	require.True(t, found)
	assert.Equal(t, bi.Hash(), got.Hash())

	_, found, err = s.GetAtHeight(2)
	require.Nil(t, err)
	assert.False(t, found)
}

func TestClearHeightIndexAboveOnlyDropsTail(t *testing.T) {
	s := memstore.New()
	require.Nil(t, s.Initialize(testfixture.GenesisBlock()))

	for i, header := range testfixture.Headers(1, 5) {
		height := int32(i + 1)
		bi := &chain.BlockIndex{Header: *header, Height: height}
		require.Nil(t, s.Put(bi))
		require.Nil(t, s.SetHeightIndex(height, bi.Hash()))
	}

	require.Nil(t, s.ClearHeightIndexAbove(2))

	_, found, err := s.GetAtHeight(2)
	require.Nil(t, err)
	assert.True(t, found)

	for h := 3; h <= 5; h++ {
		_, found, err := s.GetAtHeight(int32(h))
		require.Nil(t, err)
		assert.False(t, found, "height %d should have been cleared", h)
	}
}

func TestUpdateTipMovesTipPointer(t *testing.T) {
	s := memstore.New()
	require.Nil(t, s.Initialize(testfixture.GenesisBlock()))

	header := testfixture.Headers(1, 1)[0]
	bi := &chain.BlockIndex{Header: *header, Height: 1}
	require.Nil(t, s.Put(bi))
	require.Nil(t, s.UpdateTip(bi.Hash()))

	tip, err := s.Tip()
	require.Nil(t, err)
	assert.Equal(t, bi.Hash(), tip.Hash())
}
