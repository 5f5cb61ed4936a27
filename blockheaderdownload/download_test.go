package blockheaderdownload_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaintope/tapyrus-spv/blockheaderdownload"
	"github.com/chaintope/tapyrus-spv/chain"
	"github.com/chaintope/tapyrus-spv/chain/memstore"
	"github.com/chaintope/tapyrus-spv/internal/testfixture"
	"github.com/chaintope/tapyrus-spv/peer"
)

const testNetwork = wire.SimNet
const testPver = wire.ProtocolVersion

// remoteNode plays the full node's side of the wire for one test run: it
// answers every getheaders with the next prepared batch, then goes quiet.
func remoteNode(t *testing.T, conn net.Conn, batches [][]*wire.BlockHeader) {
	for _, batch := range batches {
		_, msg, _, err := wire.ReadMessageN(conn, testPver, testNetwork)
		require.NoError(t, err)
		_, ok := msg.(*wire.MsgGetHeaders)
		require.True(t, ok, "expected getheaders, got %T", msg)

		headersMsg := wire.NewMsgHeaders()
		for _, h := range batch {
			require.NoError(t, headersMsg.AddBlockHeader(h))
		}
		_, err = wire.WriteMessageN(conn, headersMsg, testPver, testNetwork)
		require.NoError(t, err)
	}
}

// TestDownloadRunsToCompletion covers a three-batches-of-10/10/3 scenario:
// a peer that caps at 10 headers per message, syncing a 23-block chain,
// finishes after the first short (< max) batch.
func TestDownloadRunsToCompletion(t *testing.T) {
	local, remote := net.Pipe()
	defer local.Close()
	defer remote.Close()

	batches := [][]*wire.BlockHeader{
		testfixture.Headers(1, 10),
		testfixture.Headers(11, 10),
		testfixture.Headers(21, 3),
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		remoteNode(t, remote, batches)
	}()

	store := memstore.New()
	require.Nil(t, store.Initialize(testfixture.GenesisBlock()))
	state := chain.NewState(chain.New(store))

	p := peer.New(1, local, testNetwork)
	download := blockheaderdownload.New(p, state)
	download.MaxHeaderResults = 10

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := download.Run(ctx)
	require.Nil(t, err, "%v", err)

	height, hErr := state.Height()
	require.Nil(t, hErr)
	assert.EqualValues(t, 23, height)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("remote node goroutine did not finish")
	}
}

// TestProcessHeadersRejectsOverCapBatch mirrors the original's malicious-peer
// unit test directly: a batch larger than the cap fails the whole turn.
func TestProcessHeadersRejectsOverCapBatch(t *testing.T) {
	local, remote := net.Pipe()
	defer local.Close()
	defer remote.Close()

	go func() {
		_, msg, _, err := wire.ReadMessageN(remote, testPver, testNetwork)
		if err != nil {
			return
		}
		if _, ok := msg.(*wire.MsgGetHeaders); !ok {
			return
		}
		headersMsg := wire.NewMsgHeaders()
		for _, h := range testfixture.Headers(1, 11) {
			_ = headersMsg.AddBlockHeader(h)
		}
		_, _ = wire.WriteMessageN(remote, headersMsg, testPver, testNetwork)
	}()

	store := memstore.New()
	require.Nil(t, store.Initialize(testfixture.GenesisBlock()))
	state := chain.NewState(chain.New(store))

	p := peer.New(1, local, testNetwork)
	download := blockheaderdownload.New(p, state)
	download.MaxHeaderResults = 10

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := download.Run(ctx)
	require.NotNil(t, err)
	assert.True(t, blockheaderdownload.ErrMaliciousPeer.Is(err))
}
