package engine

import (
	"context"
	"errors"
	"image"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/image/draw"

	"github.com/gogpu/fractal/internal/logging"
	"github.com/gogpu/fractal/internal/parallel"
)

// Sentinel errors.
var (
	// ErrIdle is returned when an operation needs a pass but none is running.
	ErrIdle = errors.New("engine: no render pass in progress")

	// ErrInvalidScale is returned by RenderHighRes for scales below 1.
	ErrInvalidScale = errors.New("engine: scale must be at least 1")
)

// Engine schedules fractal rendering on a worker pool.
//
// Chunk methods (Start, StartRegions, StartPan, RenderFullChunk, NextChunk,
// RenderAll, Finalize) must be called from one goroutine at a time. State
// and Progress may be called from any goroutine.
type Engine struct {
	pool   *parallel.Pool
	opts   options
	cur    atomic.Pointer[pass]
	closed atomic.Bool
}

// pass is one render pass. It is replaced wholesale by the next Start so
// that nothing carries over between passes.
type pass struct {
	state   State
	frame   Frame
	shader  *shader
	started time.Time

	// buf is the render buffer for full passes and the destination image
	// for region passes.
	buf *image.RGBA

	// Full passes.
	cov   *parallel.Coverage
	chunk int

	// Region passes.
	regions []Region
	ri      int
	ry      int
	done    atomic.Int64
	total   int
}

// New creates an engine and starts its workers.
func New(opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{
		pool: parallel.NewPool(o.workers),
		opts: o,
	}
}

// Close stops the workers. Rendering after Close still works but runs on the
// calling goroutine.
func (e *Engine) Close() {
	if e.closed.CompareAndSwap(false, true) {
		e.pool.Close()
	}
}

// Workers returns the size of the worker pool.
func (e *Engine) Workers() int {
	return e.pool.Workers()
}

func (e *Engine) log() *slog.Logger {
	if e.opts.logger != nil {
		return e.opts.logger
	}
	return logging.Logger()
}

// State returns the phase of the current pass.
func (e *Engine) State() State {
	if p := e.cur.Load(); p != nil {
		return p.state
	}
	return Idle
}

// Progress reports how far the current pass has come.
func (e *Engine) Progress() Progress {
	p := e.cur.Load()
	if p == nil {
		return Progress{State: Idle}
	}
	pr := Progress{State: p.state, Elapsed: time.Since(p.started)}
	if p.state == RenderingFull {
		pr.Done, pr.Total = p.cov.Count(), p.cov.Rows()
	} else {
		pr.Done, pr.Total = int(p.done.Load()), p.total
	}
	return pr
}

// ChunkRows returns the chunk height NextChunk uses for a buffer of the
// given height: ceil(height / chunks per frame), at least 1.
func (e *Engine) ChunkRows(height int) int {
	n := e.opts.chunksPerFrame
	return max((height+n-1)/n, 1)
}

// Start begins a full-frame pass over f, abandoning any pass in progress.
// It only allocates and clears the buffer; no iteration work happens here.
func (e *Engine) Start(f Frame) {
	f.Config = f.Config.normalized()
	w, h := f.Config.renderSize()

	buf := image.NewRGBA(image.Rect(0, 0, w, h))
	blacken(buf.Pix)

	rows := h
	if w == 0 {
		rows = 0
	}
	p := &pass{
		state:   RenderingFull,
		frame:   f,
		shader:  newShader(f),
		started: time.Now(),
		buf:     buf,
		cov:     parallel.NewCoverage(rows),
		chunk:   e.ChunkRows(rows),
	}
	if old := e.cur.Swap(p); old != nil {
		e.log().Debug("engine: pass abandoned", "state", old.state)
	}
	e.log().Debug("engine: pass started",
		"kernel", f.Kernel.Name(),
		"width", w, "height", h,
		"supersample", f.Config.Supersample,
		"max_iterations", f.Config.MaxIterations)
}

// RenderFullChunk renders rows [yStart, yStart+chunkSize) of the render
// buffer in parallel and reports whether rows remain below the chunk. Rows
// are clamped to the buffer; a non-positive chunkSize uses ChunkRows.
// Without a full pass it does nothing and returns false.
func (e *Engine) RenderFullChunk(yStart, chunkSize int) bool {
	p := e.cur.Load()
	if p == nil || p.state != RenderingFull {
		return false
	}
	if chunkSize <= 0 {
		chunkSize = p.chunk
	}
	w, h := p.buf.Rect.Dx(), p.cov.Rows()
	y0 := min(max(yStart, 0), h)
	y1 := min(y0+chunkSize, h)
	if y0 >= y1 {
		return y0 < h
	}

	e.pool.RunBands(y0, y1, func(b parallel.Band) {
		p.shader.fillRows(p.buf, b.Y0, b.Y1, w, h)
		p.cov.MarkRange(b.Y0, b.Y1)
	})
	return y1 < h
}

// NextChunk advances the current pass by one chunk and reports whether more
// work remains. It returns false when idle.
func (e *Engine) NextChunk() bool {
	p := e.cur.Load()
	if p == nil {
		return false
	}
	switch p.state {
	case RenderingFull:
		y := p.cov.NextGap(0)
		if y >= p.cov.Rows() {
			return false
		}
		e.RenderFullChunk(y, p.chunk)
		return !p.cov.Complete()
	case RenderingRegions:
		return e.nextRegionChunk(p)
	default:
		return false
	}
}

// RenderAll drives the current pass to completion, checking ctx between
// chunks.
func (e *Engine) RenderAll(ctx context.Context) error {
	if e.cur.Load() == nil {
		return ErrIdle
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !e.NextChunk() {
			return nil
		}
	}
}

// Finalize ends the current pass and hands its image to the caller. Full
// supersampled passes are box-filtered to the output size. Rows that were
// never rendered stay black. Finalize returns nil when idle.
func (e *Engine) Finalize() *image.RGBA {
	p := e.cur.Swap(nil)
	if p == nil {
		return nil
	}

	img := p.buf
	if p.state == RenderingFull && p.frame.Config.Supersample {
		img = e.downsample(p.buf)
	}
	e.log().Debug("engine: pass finished",
		"state", p.state,
		"elapsed", time.Since(p.started))
	return img
}

// StartRegions begins a pass that renders regions of f directly into dst,
// which must be an output-size image with its origin at (0, 0). Regions are
// clamped to dst; empty ones are dropped.
func (e *Engine) StartRegions(f Frame, dst *image.RGBA, regions []Region) {
	f.Config = f.Config.normalized()
	b := dst.Bounds()

	p := &pass{
		state:   RenderingRegions,
		frame:   f,
		shader:  newShader(f),
		started: time.Now(),
		buf:     dst,
	}
	for _, r := range regions {
		r = r.Clamp(b.Dx(), b.Dy())
		if r.Empty() {
			continue
		}
		p.regions = append(p.regions, r)
		p.total += r.Height
	}
	if old := e.cur.Swap(p); old != nil {
		e.log().Debug("engine: pass abandoned", "state", old.state)
	}
	e.log().Debug("engine: region pass started",
		"kernel", f.Kernel.Name(),
		"regions", len(p.regions),
		"rows", p.total)
}

func (e *Engine) nextRegionChunk(p *pass) bool {
	for p.ri < len(p.regions) {
		r := p.regions[p.ri]
		chunk, ok := e.renderRegion(p.shader, p.frame.Config, r, p.ry, e.ChunkRows(r.Height))
		if !ok {
			p.ri++
			p.ry = 0
			continue
		}
		draw.Draw(p.buf, chunk.Bounds(), chunk, chunk.Bounds().Min, draw.Src)
		rows := chunk.Bounds().Dy()
		p.ry += rows
		p.done.Add(int64(rows))
		if p.ry >= r.Height {
			p.ri++
			p.ry = 0
		}
		return p.ri < len(p.regions)
	}
	return false
}
