// Package xlog wraps github.com/rs/zerolog the way the teacher's
// pkg/logger/logger.go does (console writer, caller info, Unix timestamps),
// but returns a plain zerolog.Logger value instead of a package-level
// global. The CLI is its only user; the library packages do not log.
package xlog

import (
	"os"

	"github.com/rs/zerolog"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}

// New returns a console logger with caller information, matching the
// teacher's default logger construction.
func New() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Caller().Logger()
}

// Disabled returns a logger that discards everything, suitable as the
// default for library code exercised by tests.
func Disabled() zerolog.Logger {
	return zerolog.Nop()
}
