// Package logger builds the application's zerolog logger. main installs
// the result as the global zerolog/log logger so handlers can log without
// threading a logger through every factory.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

func New(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
