package blockheaderdownload

import "github.com/chaintope/tapyrus-spv/er"

// Err is the error family for the download driver.
var Err = er.NewErrorType("blockheaderdownload.Err")

// ErrMaliciousPeer is returned when a peer sends more headers in a single
// batch than the protocol-level cap allows. Fatal: the caller should
// disconnect the peer.
var ErrMaliciousPeer = Err.CodeWithDetail("ErrMaliciousPeer",
	"peer sent more headers in one batch than the protocol allows")
