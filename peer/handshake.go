// Copyright (c) 2019 Chaintope Inc.
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package peer

import (
	"time"

	"github.com/btcsuite/btcd/wire"

	"github.com/chaintope/tapyrus-spv/er"
	"github.com/chaintope/tapyrus-spv/spvlog"
)

// handshakeState is the version-exchange state machine.
type handshakeState int

const (
	stateInit handshakeState = iota
	stateAwaitVersion
	stateAwaitVerack
	stateDone
)

// Handshake drives p through the version/verack exchange and blocks until
// it completes or fails; it has no timeout of its own. On success p is left ready
// for BlockHeaderDownload; on failure the caller should close p.
func Handshake(p *Peer) er.R {
	state := stateInit
	p.StartSend(NewVersionMessage())
	if err := p.Flush(); err != nil {
		return err
	}
	state = stateAwaitVersion

	for state != stateDone {
		advanced := false

		pollErr := p.Poll(func(msg wire.Message) er.R {
			switch state {
			case stateAwaitVersion:
				v, ok := msg.(*wire.MsgVersion)
				if !ok {
					return nil // drain: ignore anything but version
				}
				p.Version = v
				spvlog.PEER().Debugf("%s: received version, user agent %q", p.Addr, v.UserAgent)
				p.StartSend(wire.NewMsgVerAck())
				state = stateAwaitVerack
				advanced = true

			case stateAwaitVerack:
				if _, ok := msg.(*wire.MsgVerAck); !ok {
					return nil
				}
				state = stateDone
				advanced = true
			}
			return nil
		})
		if pollErr != nil {
			if ErrIo.Is(pollErr) {
				return ErrUnexpectedEof.New("", nil)
			}
			return pollErr
		}
		if flushErr := p.Flush(); flushErr != nil {
			return flushErr
		}

		if !advanced && state != stateDone {
			time.Sleep(5 * time.Millisecond)
		}
	}

	return nil
}
