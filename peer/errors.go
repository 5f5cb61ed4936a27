package peer

import "github.com/chaintope/tapyrus-spv/er"

// Err is the error family for peer-level failures: i/o, codec, and
// network-magic mismatches.
var Err = er.NewErrorType("peer.Err")

var (
	// ErrIo wraps a failed read or write on the underlying connection.
	ErrIo = Err.CodeWithDetail("ErrIo", "i/o error communicating with peer")

	// ErrCodec wraps a message that failed to encode or decode.
	ErrCodec = Err.CodeWithDetail("ErrCodec", "wire protocol codec error")

	// ErrWrongMagicBytes is returned when an inbound frame's magic does not
	// match the configured network. Fatal to the connection.
	ErrWrongMagicBytes = Err.CodeWithDetail("ErrWrongMagicBytes",
		"peer sent a message with the wrong network magic")

	// ErrUnexpectedEof is returned by Handshake when the connection closes
	// before reaching the Done state.
	ErrUnexpectedEof = Err.CodeWithDetail("ErrUnexpectedEof",
		"connection closed before handshake completed")
)
