// Copyright (c) 2019 Chaintope Inc.
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

// Package blockheaderdownload is the protocol driver: it issues getheaders,
// consumes headers, advances the chain, and completes once a batch shorter
// than the cap arrives.
package blockheaderdownload

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/wire"

	"github.com/chaintope/tapyrus-spv/chain"
	"github.com/chaintope/tapyrus-spv/er"
	"github.com/chaintope/tapyrus-spv/peer"
	"github.com/chaintope/tapyrus-spv/spvlog"
)

// MaxHeadersResults is the maximum number of headers a well-behaved peer
// may put in a single headers message, matching the reference protocol.
const MaxHeadersResults = 2000

// Download drives a single handshaked Peer through full header sync.
type Download struct {
	Peer            *peer.Peer
	State           *chain.State
	MaxHeaderResults int

	started bool
}

// New constructs a Download with the default MaxHeadersResults cap.
func New(p *peer.Peer, state *chain.State) *Download {
	return &Download{Peer: p, State: state, MaxHeaderResults: MaxHeadersResults}
}

// Run drives the download to completion: on each turn it sends the
// initial getheaders (once), drains whatever headers messages are
// available, and returns once a final (short) batch has been processed or
// ctx is done. It never blocks inside the chain-state mutex.
func (d *Download) Run(ctx context.Context) er.R {
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for {
		done, err := d.turn()
		if err != nil {
			return err
		}
		if done {
			return nil
		}

		select {
		case <-ctx.Done():
			return er.E(ctx.Err())
		case <-ticker.C:
		}
	}
}

// turn runs one scheduler turn: send the initial request if needed, drain
// whatever is available on the wire, and report whether the download is
// complete.
func (d *Download) turn() (bool, er.R) {
	if !d.started {
		if err := d.Peer.SendGetHeaders(d.State); err != nil {
			return false, err
		}
		d.started = true
	}

	done := false
	pollErr := d.Peer.Poll(func(msg wire.Message) er.R {
		headersMsg, ok := msg.(*wire.MsgHeaders)
		if !ok {
			return nil
		}

		final, err := d.processHeaders(headersMsg.Headers)
		if err != nil {
			return err
		}
		if final {
			done = true
		}
		return nil
	})
	if pollErr != nil {
		return false, pollErr
	}

	if err := d.Peer.Flush(); err != nil {
		return false, err
	}

	return done, nil
}

// processHeaders admits a batch of headers to the chain, reporting whether
// this was the final (short) batch. Individual header failures (e.g. a
// stray OrphanHeader) do not abort the batch.
func (d *Download) processHeaders(headers []*wire.BlockHeader) (bool, er.R) {
	if len(headers) > d.MaxHeaderResults {
		return false, ErrMaliciousPeer.New(fmt.Sprintf("peer %d", d.Peer.ID), nil)
	}

	final := len(headers) < d.MaxHeaderResults

	batch := make([]wire.BlockHeader, len(headers))
	for i, header := range headers {
		batch[i] = *header
	}
	d.State.ConnectBlockHeaders(batch, func(header wire.BlockHeader, err er.R) {
		spvlog.BHDL().Warnf("ignoring header %s: %s", header.BlockHash(), err.Message())
	})

	if !final {
		if err := d.Peer.SendGetHeaders(d.State); err != nil {
			return false, err
		}
	}

	return final, nil
}
