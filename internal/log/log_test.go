package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		verbose, quiet bool
		want           slog.Level
	}{
		{"default", false, false, slog.LevelInfo},
		{"verbose", true, false, slog.LevelDebug},
		{"quiet", false, true, slog.LevelWarn},
		{"quiet wins", true, true, slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Level(tt.verbose, tt.quiet); got != tt.want {
				t.Errorf("Level(%v, %v) = %v, want %v", tt.verbose, tt.quiet, got, tt.want)
			}
		})
	}
}

func TestSetup(t *testing.T) {
	// Not parallel: replaces the default logger.
	orig := slog.Default()
	defer slog.SetDefault(orig)

	var buf bytes.Buffer
	logger := Setup(&buf, false, true)

	logger.Info("hidden")
	logger.Warn("shown", "path", "chart.html")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("quiet logger should drop INFO messages")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "path=chart.html") {
		t.Errorf("quiet logger output = %q, want WARN message with attrs", out)
	}
	if slog.Default() != logger {
		t.Error("Setup should install the logger as default")
	}
}
