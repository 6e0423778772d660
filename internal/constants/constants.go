// Package constants defines the constants shared across system-info-utils.
package constants

import (
	"log/slog"
)

const (
	// CmdName is the name of the inspection command line tool.
	CmdName = "system-info"

	// DefaultLogLevel is the log level selected without any verbosity flags.
	DefaultLogLevel = slog.LevelWarn
)

// Version is the version of the tool, overridden at build time.
var Version = "Dev"
