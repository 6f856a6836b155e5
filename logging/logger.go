// Package logging builds the leveled logger used by the command line driver.
//
// OPSOLVE_LOG_LEVEL selects debug, info, warn or error (default info).
// OPSOLVE_LOG_PREFIX replaces the "opsolve" message prefix.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

const (
	ENV_LOG_LEVEL  = "OPSOLVE_LOG_LEVEL"
	ENV_LOG_PREFIX = "OPSOLVE_LOG_PREFIX"
)

// Level maps a level name to a log level. Unknown names are InfoLevel.
func Level(name string) log.Level {
	switch name {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// NewLoggerWithWriter creates a logger on w, configured from the environment.
func NewLoggerWithWriter(w io.Writer) *log.Logger {
	lg := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})

	lg.SetLevel(Level(os.Getenv(ENV_LOG_LEVEL)))

	prefix := os.Getenv(ENV_LOG_PREFIX)
	if prefix == "" {
		prefix = "opsolve"
	}

	return lg.WithPrefix(prefix)
}

// NewLogger creates a logger on stderr.
func NewLogger() *log.Logger {
	return NewLoggerWithWriter(os.Stderr)
}

// IsDebug is true when the environment requests debug logging.
func IsDebug() bool {
	return os.Getenv(ENV_LOG_LEVEL) == "debug"
}
