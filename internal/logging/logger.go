package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global logger for human-readable progress output.
// ASSETPREP_LOG_LEVEL selects debug, info, warn or error (default: info);
// verbose forces debug.
func Init(out io.Writer, verbose bool) {
	if out == nil {
		out = os.Stdout
	}
	zerolog.SetGlobalLevel(levelFromEnv())
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",
	}).With().Timestamp().Logger()
}

func levelFromEnv() zerolog.Level {
	switch os.Getenv("ASSETPREP_LOG_LEVEL") {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
