// Copyright (c) 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version holds the client semver string embedded in the P2P
// handshake user agent.
package version

// Version is the tapyrus-spv release version.
const Version = "0.1.0"

// String returns the version in the form expected by callers that print it
// alongside log output or error messages.
func String() string {
	return "tapyrus-spv " + Version
}

// Name is the user agent name this client identifies itself with during
// the P2P handshake.
const Name = "tapyrus-spv"
