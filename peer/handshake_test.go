package peer_test

import (
	"net"
	"testing"
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaintope/tapyrus-spv/peer"
)

const testNetwork = wire.SimNet
const testPver = wire.ProtocolVersion

func TestHandshakeCompletesWithCooperativePeer(t *testing.T) {
	local, remote := net.Pipe()
	defer local.Close()
	defer remote.Close()

	done := make(chan error, 1)
	go func() {
		_, msg, _, err := wire.ReadMessageN(remote, testPver, testNetwork)
		if err != nil {
			done <- err
			return
		}
		if _, ok := msg.(*wire.MsgVersion); !ok {
			done <- assertFail("expected version message")
			return
		}

		remoteAddr, _ := wire.NewNetAddress(&net.TCPAddr{IP: net.IPv4zero, Port: 0}, 0)
		versionMsg := wire.NewMsgVersion(remoteAddr, remoteAddr, 99, 0)
		if _, err := wire.WriteMessageN(remote, versionMsg, testPver, testNetwork); err != nil {
			done <- err
			return
		}

		_, msg, _, err = wire.ReadMessageN(remote, testPver, testNetwork)
		if err != nil {
			done <- err
			return
		}
		if _, ok := msg.(*wire.MsgVerAck); !ok {
			done <- assertFail("expected verack message")
			return
		}

		if _, err := wire.WriteMessageN(remote, wire.NewMsgVerAck(), testPver, testNetwork); err != nil {
			done <- err
			return
		}
		done <- nil
	}()

	p := peer.New(1, local, testNetwork)
	err := peer.Handshake(p)
	require.Nil(t, err, "%v", err)
	assert.NotNil(t, p.Version)

	select {
	case remoteErr := <-done:
		require.NoError(t, remoteErr)
	case <-time.After(5 * time.Second):
		t.Fatal("remote side did not finish")
	}
}

type assertFailError string

func (e assertFailError) Error() string { return string(e) }

func assertFail(msg string) error { return assertFailError(msg) }
