package fractal

import (
	"log/slog"

	"github.com/gogpu/fractal/internal/logging"
)

// SetLogger configures the logger for fractal and all its sub-packages.
// By default, fractal produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by fractal:
//   - [slog.LevelDebug]: per-pass diagnostics (chunk rows, regions, pixel shift)
//   - [slog.LevelInfo]: lifecycle events (pass finished, file written)
//   - [slog.LevelWarn]: degenerate geometry that produced no work
//
// Example:
//
//	// Enable info-level logging to stderr:
//	fractal.SetLogger(slog.Default())
//
//	// Enable debug-level logging for full diagnostics:
//	fractal.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by fractal.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
