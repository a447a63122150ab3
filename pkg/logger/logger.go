package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// EnvLevel names the environment variable holding the log level.
const EnvLevel = "MORSE_LOG_LEVEL"

// New returns a console logger writing to w. The level comes from
// MORSE_LOG_LEVEL and defaults to warn; verbose forces debug.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := levelFromEnv()
	if verbose {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.TimeOnly,
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func levelFromEnv() zerolog.Level {
	switch os.Getenv(EnvLevel) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}
