// Command fractalserve streams fractal frames over websockets.
//
// A client opens a websocket on /render and sends one JSON request: a view
// state (kernel, center, zoom, palette, parameters) plus width and height.
// The server answers with one binary message per finished chunk, each a
// 16-byte header (x, y, width, height as little-endian uint32) followed by
// the chunk's RGBA pixels, and ends with a JSON {"type":"done"} message.
// Finished frames are cached, so repeated requests stream without rendering.
//
// GET /kernels lists the available kernels and their parameters; GET /stats
// reports frame cache statistics.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/gogpu/fractal"
)

func main() {
	var (
		addr    = flag.String("addr", ":8080", "listen address")
		workers = flag.Int("workers", 0, "worker goroutines per render (default: GOMAXPROCS)")
		frames  = flag.Int("cache", 32, "number of finished frames to keep")
		maxSide = flag.Int("max", 4096, "largest accepted width or height")
		origins = flag.String("origins", "localhost:*", "comma-separated websocket origin patterns")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, *addr, *workers, *frames, *maxSide, strings.Split(*origins, ","), *verbose); err != nil {
		log.Fatalf("fractalserve: %v", err)
	}
}

func run(ctx context.Context, addr string, workers, frames, maxSide int, origins []string, verbose bool) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	fractal.SetLogger(logger)

	s := newServer(frames, workers, maxSide, origins, logger)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
