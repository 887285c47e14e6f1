// Package log configures structured logging for chart2html using log/slog.
package log

import (
	"io"
	"log/slog"
)

// Setup installs the default slog logger based on verbosity flags and
// returns it.
//
//   - quiet mode:   only WARN and ERROR messages
//   - normal mode:  INFO and above
//   - verbose mode: DEBUG and above
func Setup(w io.Writer, verbose, quiet bool) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: Level(verbose, quiet),
	}))
	slog.SetDefault(logger)
	return logger
}

// Level resolves the verbosity flags to a slog level. Quiet wins.
func Level(verbose, quiet bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelWarn
	case verbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
