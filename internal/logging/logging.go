// Package logging configures the process-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup installs the global logger. Production emits JSON lines to stdout,
// everything else gets the human-friendly console writer.
func Setup(appEnv, level string) zerolog.Logger {
	return setup(os.Stdout, appEnv, level)
}

func setup(out io.Writer, appEnv, level string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	w := out
	if appEnv != "production" {
		w = zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
			cw.Out = out
			cw.TimeFormat = time.RFC3339
		})
	}

	logger := zerolog.New(w).Level(lvl).With().Timestamp().Str("service", "photo-upload-api").Logger()
	log.Logger = logger
	zerolog.DefaultContextLogger = &log.Logger
	return logger
}
