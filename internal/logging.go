package internal

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogging configures the global zerolog logger. Output goes to stderr so
// command results on stdout stay machine readable.
func InitLogging(jsonOutput, debug bool) {
	InitLoggingTo(os.Stderr, jsonOutput, debug)
}

// InitLoggingTo is InitLogging with an explicit destination.
func InitLoggingTo(w io.Writer, jsonOutput, debug bool) {
	zerolog.TimeFieldFormat = time.RFC3339
	if jsonOutput {
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339})
	}

	if debug {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}
}

// InitLoggingFromEnv reads FIVEONEONE_LOG_FORMAT=JSON and FIVEONEONE_DEBUG=YES.
func InitLoggingFromEnv() {
	InitLogging(os.Getenv("FIVEONEONE_LOG_FORMAT") == "JSON", os.Getenv("FIVEONEONE_DEBUG") == "YES")
}
