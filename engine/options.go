package engine

import "log/slog"

// DefaultChunksPerFrame is the number of chunks a full pass is cut into.
const DefaultChunksPerFrame = 60

// Option configures an Engine during creation.
//
// Example:
//
//	eng := engine.New(engine.WithWorkers(4), engine.WithChunksPerFrame(30))
type Option func(*options)

type options struct {
	workers        int
	chunksPerFrame int
	logger         *slog.Logger
}

func defaultOptions() options {
	return options{
		workers:        0, // GOMAXPROCS
		chunksPerFrame: DefaultChunksPerFrame,
	}
}

// WithWorkers sets the worker goroutine count. Zero or negative uses
// GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithChunksPerFrame sets how many chunks NextChunk cuts a full pass into.
// Values below 1 are ignored.
func WithChunksPerFrame(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.chunksPerFrame = n
		}
	}
}

// WithLogger routes the engine's log output to l instead of the package
// logger set through fractal.SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
