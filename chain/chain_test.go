package chain_test

import (
	"testing"
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaintope/tapyrus-spv/chain"
	"github.com/chaintope/tapyrus-spv/chain/memstore"
	"github.com/chaintope/tapyrus-spv/internal/testfixture"
)

func newTestChain(t *testing.T) *chain.Chain {
	t.Helper()
	store := memstore.New()
	err := store.Initialize(testfixture.GenesisBlock())
	require.Nil(t, err)
	return chain.New(store)
}

func connectAll(t *testing.T, c *chain.Chain, headers []*wire.BlockHeader) {
	t.Helper()
	for _, h := range headers {
		_, err := c.ConnectBlockHeader(*h)
		require.Nil(t, err)
	}
}

// childOf builds a synthetic, unmined header extending parent — enough to
// exercise Chain's pure data-structure logic, which never checks proof of
// work.
func childOf(parent wire.BlockHeader, nonce uint32) wire.BlockHeader {
	return wire.BlockHeader{
		Version:    1,
		PrevBlock:  parent.BlockHash(),
		MerkleRoot: parent.MerkleRoot,
		Timestamp:  parent.Timestamp.Add(time.Minute),
		Bits:       parent.Bits,
		Nonce:      nonce,
	}
}

func TestConnectBlockHeaderExtendsLinearly(t *testing.T) {
	c := newTestChain(t)
	headers := testfixture.Headers(1, 23)
	connectAll(t, c, headers)

	height, err := c.Height()
	require.Nil(t, err)
	assert.EqualValues(t, 23, height)

	tip, err := c.Tip()
	require.Nil(t, err)
	assert.Equal(t, headers[len(headers)-1].BlockHash(), tip.Hash())
}

func TestConnectBlockHeaderIsIdempotent(t *testing.T) {
	c := newTestChain(t)
	headers := testfixture.Headers(1, 5)
	connectAll(t, c, headers)
	connectAll(t, c, headers) // re-applying the whole batch is a no-op

	height, err := c.Height()
	require.Nil(t, err)
	assert.EqualValues(t, 5, height)
}

func TestConnectBlockHeaderRejectsOrphan(t *testing.T) {
	c := newTestChain(t)
	headers := testfixture.Headers(1, 5)

	// Skip the first header: the second one's parent is unknown to the store.
	_, err := c.ConnectBlockHeader(*headers[1])
	require.NotNil(t, err)
	assert.True(t, chain.ErrOrphanHeader.Is(err))
}

func TestGetLocatorShape(t *testing.T) {
	c := newTestChain(t)
	headers := testfixture.Headers(1, 20)
	connectAll(t, c, headers)

	locator, err := c.GetLocator()
	require.Nil(t, err)
	require.True(t, len(locator) >= 11)

	tip, err := c.Tip()
	require.Nil(t, err)

	for i := 0; i < 10; i++ {
		hash, ok, err := c.GetBlockHash(tip.Height - int32(i))
		require.Nil(t, err)
		require.True(t, ok)
		assert.Equal(t, hash, locator[i])
	}

	genesisHash, ok, err := c.GetBlockHash(0)
	require.Nil(t, err)
	require.True(t, ok)
	assert.Equal(t, genesisHash, locator[len(locator)-1])
}

func TestReorgSwitchesTipToLongerBranch(t *testing.T) {
	c := newTestChain(t)
	genesis := *testfixture.Genesis()

	a1 := childOf(genesis, 1)
	a2 := childOf(a1, 1)
	connectAll(t, c, []*wire.BlockHeader{&a1, &a2})

	height, err := c.Height()
	require.Nil(t, err)
	assert.EqualValues(t, 2, height)

	// A shorter competing branch off genesis: stored, but the tip stays put
	// until the competing branch actually grows past it.
	b1 := childOf(genesis, 2)
	_, err = c.ConnectBlockHeader(b1)
	require.Nil(t, err)

	tip, err := c.Tip()
	require.Nil(t, err)
	assert.Equal(t, a2.BlockHash(), tip.Hash())

	// Extending b past a's height triggers a reorg.
	b2 := childOf(b1, 2)
	b3 := childOf(b2, 2)
	connectAll(t, c, []*wire.BlockHeader{&b2, &b3})

	tip, err = c.Tip()
	require.Nil(t, err)
	assert.Equal(t, b3.BlockHash(), tip.Hash())
	assert.EqualValues(t, 3, tip.Height)

	// height 1 on the active chain is now b1, not a1.
	hash, ok, err := c.GetBlockHash(1)
	require.Nil(t, err)
	require.True(t, ok)
	assert.Equal(t, b1.BlockHash(), hash)

	// a1 is still known to the store (not forgotten), just off the active chain.
	a1bi, ok, err := c.GetBlockIndex(a1.BlockHash())
	require.Nil(t, err)
	require.True(t, ok)
	assert.EqualValues(t, 1, a1bi.Height)
}
