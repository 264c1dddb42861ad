// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/btcsuite/btclog"

	"github.com/katalvlaran/adjset/builder"
	"github.com/katalvlaran/adjset/core"
	"github.com/katalvlaran/adjset/seedfile"
)

// Loggers per subsystem.  A single backend logger is created and all subsystem
// loggers created from it write to stderr, leaving stdout for the document.
var (
	backendLog = btclog.NewBackend(os.Stderr)

	log     = backendLog.Logger("MAIN")
	coreLog = backendLog.Logger("CORE")
	bldrLog = backendLog.Logger("BLDR")
	seedLog = backendLog.Logger("SEED")
)

// Initialize package-global logger variables.
func init() {
	core.UseLogger(coreLog)
	builder.UseLogger(bldrLog)
	seedfile.UseLogger(seedLog)
}

// subsystemLoggers maps each subsystem identifier to its associated logger.
var subsystemLoggers = map[string]btclog.Logger{
	"MAIN": log,
	"CORE": coreLog,
	"BLDR": bldrLog,
	"SEED": seedLog,
}

// setLogLevels sets the logging level for all subsystem loggers.  The level
// must already have been validated by loadConfig.
func setLogLevels(logLevel string) {
	level, _ := btclog.LevelFromString(logLevel)
	for _, logger := range subsystemLoggers {
		logger.SetLevel(level)
	}
}
