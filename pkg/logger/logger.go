// Package logger holds the process-wide zerolog logger.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

var Log zerolog.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Init configures the global logger. Pretty enables the human-readable
// console writer for local development.
func Init(pretty bool) {
	var out = zerolog.New(os.Stdout)
	if pretty {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	}
	Log = out.With().Timestamp().Logger()
}
