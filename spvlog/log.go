// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package spvlog bootstraps the per-subsystem loggers used across this
// module, using a subsystem-name-to-logger map over btcsuite/btclog
// directly instead of a log-rotating wrapper.
package spvlog

import (
	"os"

	"github.com/btcsuite/btclog"
)

// logWriter writes log output to stdout.
type logWriter struct{}

func (logWriter) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

// backendLog is the logging backend all subsystem loggers are created from.
var backendLog = btclog.NewBackend(logWriter{})

// Subsystem loggers. Add new subsystems here and to the subsystemLoggers map.
var (
	spvcLog = backendLog.Logger("SPVC") // cmd/tapyrus-spv
	chstLog = backendLog.Logger("CHST") // chain, chainstore implementations
	peerLog = backendLog.Logger("PEER") // peer, handshake
	bhdlLog = backendLog.Logger("BHDL") // blockheaderdownload
)

// Loggers returns the package-level loggers for CLI/config wiring.
func Loggers() (spvc, chst, peer, bhdl btclog.Logger) {
	return spvcLog, chstLog, peerLog, bhdlLog
}

var subsystemLoggers = map[string]btclog.Logger{
	"SPVC": spvcLog,
	"CHST": chstLog,
	"PEER": peerLog,
	"BHDL": bhdlLog,
}

// SetLogLevel sets the logging level for the named subsystem. Unknown
// subsystems are ignored.
func SetLogLevel(subsystemID string, logLevel string) {
	logger, ok := subsystemLoggers[subsystemID]
	if !ok {
		return
	}
	level, _ := btclog.LevelFromString(logLevel)
	logger.SetLevel(level)
}

// SetLogLevels sets the logging level for every subsystem.
func SetLogLevels(logLevel string) {
	for subsystemID := range subsystemLoggers {
		SetLogLevel(subsystemID, logLevel)
	}
}

// CHST returns the chain/chainstore subsystem logger, for use by packages
// that can't reach spvlog's unexported loggers directly (chain calls it
// when logging a reorganization).
func CHST() btclog.Logger { return chstLog }

// PEER returns the peer subsystem logger.
func PEER() btclog.Logger { return peerLog }

// BHDL returns the blockheaderdownload subsystem logger.
func BHDL() btclog.Logger { return bhdlLog }
