// Copyright (c) 2019 Chaintope Inc.
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

// Package peer is the wire-protocol connection to a single full node:
// framing, outbound send buffering, and inbound magic-byte verification,
// built directly on btcsuite/btcd/wire rather than a hand-rolled codec.
package peer

import (
	"bufio"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"math/rand"
	"net"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/chaintope/tapyrus-spv/chain"
	"github.com/chaintope/tapyrus-spv/er"
	"github.com/chaintope/tapyrus-spv/spvlog"
	"github.com/chaintope/tapyrus-spv/version"
)

// ID identifies a Peer for the lifetime of the process; used to attribute
// ErrMaliciousPeer.
type ID uint64

// pver is the wire protocol version this client speaks. No SPV-specific
// extensions are needed beyond what getheaders/headers already require.
const pver = wire.ProtocolVersion

// Peer wraps one TCP connection to a node speaking the Bitcoin-compatible
// wire protocol. Writes are buffered until Flush; reads are drained with
// Poll, which never blocks.
type Peer struct {
	ID      ID
	Addr    net.Addr
	Network wire.BitcoinNet

	conn   net.Conn
	reader *bufio.Reader
	outbox []wire.Message

	Version *wire.MsgVersion
}

// Dial opens a TCP connection to addr and wraps it in a Peer. The caller
// still must drive the Handshake before using the Peer for anything else.
func Dial(ctx context.Context, addr string, network wire.BitcoinNet, id ID) (*Peer, er.R) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, er.E(err)
	}
	return New(id, conn, network), nil
}

// New wraps an already-connected net.Conn in a Peer.
func New(id ID, conn net.Conn, network wire.BitcoinNet) *Peer {
	return &Peer{
		ID:      id,
		Addr:    conn.RemoteAddr(),
		Network: network,
		conn:    conn,
		reader:  bufio.NewReaderSize(conn, 1<<20),
	}
}

// StartSend queues message for sending; the queue is flushed by Flush.
func (p *Peer) StartSend(message wire.Message) {
	spvlog.PEER().Tracef("%s: queueing %s", p.Addr, message.Command())
	p.outbox = append(p.outbox, message)
}

// Flush writes every queued outbound message to the wire.
func (p *Peer) Flush() er.R {
	for _, msg := range p.outbox {
		if err := p.conn.SetWriteDeadline(time.Now().Add(30 * time.Second)); err != nil {
			return er.E(err)
		}
		if _, err := wire.WriteMessageN(p.conn, msg, pver, p.Network); err != nil {
			return ErrIo.New("writing "+msg.Command(), er.E(err))
		}
	}
	p.outbox = p.outbox[:0]
	return nil
}

// SendGetHeaders queues a getheaders request built from the chain's current
// locator, stopping at the zero hash (meaning: send as many as you have).
func (p *Peer) SendGetHeaders(state *chain.State) er.R {
	locator, err := state.GetLocator()
	if err != nil {
		return err
	}

	msg := wire.NewMsgGetHeaders()
	msg.ProtocolVersion = pver
	for i := range locator {
		h := locator[i]
		if addErr := msg.AddBlockLocatorHash(&h); addErr != nil {
			return er.E(addErr)
		}
	}
	msg.HashStop = chainhash.Hash{}

	p.StartSend(msg)
	return nil
}

// Poll drains every message currently available on the wire without
// blocking, invoking handle for each. It returns when the read would
// block, the peer closes the connection (io.EOF, reported as ErrIo), or
// handle returns an error (propagated immediately).
func (p *Peer) Poll(handle func(wire.Message) er.R) er.R {
	if err := p.conn.SetReadDeadline(time.Now().Add(10 * time.Millisecond)); err != nil {
		return er.E(err)
	}

	for {
		magic, peekErr := p.peekMagic()
		if peekErr == errWouldBlock {
			return nil
		}
		if peekErr == io.EOF {
			return ErrIo.New("peer closed connection", er.E(io.EOF))
		}
		if peekErr != nil {
			return ErrIo.New("reading from peer", er.E(peekErr))
		}
		if magic != uint32(p.Network) {
			spvlog.PEER().Infof("%s: wrong magic bytes", p.Addr)
			return ErrWrongMagicBytes.Default()
		}

		_, msg, _, readErr := wire.ReadMessageN(p.reader, pver, p.Network)
		if readErr != nil {
			return ErrCodec.New("decoding inbound message", er.E(readErr))
		}

		spvlog.PEER().Tracef("%s: received %s", p.Addr, msg.Command())
		if err := handle(msg); err != nil {
			return err
		}

		// Subsequent reads in this turn must not block either.
		if err := p.conn.SetReadDeadline(time.Now().Add(1 * time.Millisecond)); err != nil {
			return er.E(err)
		}
	}
}

var errWouldBlock = io.ErrNoProgress

// peekMagic inspects the first four bytes of the next frame without
// consuming them, translating a deadline timeout into errWouldBlock.
func (p *Peer) peekMagic() (uint32, error) {
	head, err := p.reader.Peek(4)
	if err != nil {
		if ne, ok := err.(net.Error); ok && ne.Timeout() {
			return 0, errWouldBlock
		}
		return 0, err
	}
	return binary.LittleEndian.Uint32(head), nil
}

// Close shuts down the underlying connection.
func (p *Peer) Close() er.R {
	if err := p.conn.Close(); err != nil {
		return er.E(err)
	}
	return nil
}

// NewVersionMessage builds the outbound version payload: zero services,
// blank addresses, a fresh timestamp, a random nonce, start_height 0, and
// this client's user agent.
func NewVersionMessage() *wire.MsgVersion {
	blank, _ := wire.NewNetAddress(&net.TCPAddr{IP: net.IPv4zero, Port: 0}, 0)

	nonce := rand.New(rand.NewSource(time.Now().UnixNano())).Uint64()

	msg := wire.NewMsgVersion(blank, blank, nonce, 0)
	msg.UserAgent = fmt.Sprintf("/%s:%s/", version.Name, version.Version)
	return msg
}
