package engine

import (
	"fmt"
	"image"
	"time"

	"github.com/gogpu/fractal/coloring"
	"github.com/gogpu/fractal/kernel"
	"github.com/gogpu/fractal/palette"
	"github.com/gogpu/fractal/viewport"
)

// Config is the per-pass render configuration.
type Config struct {
	// Width and Height are the output size in pixels.
	Width  int
	Height int

	// Supersample renders at 2× and box-filters down to the output size.
	Supersample bool

	// MaxIterations is the iteration budget per sample.
	MaxIterations uint32

	Palette       palette.ID
	PaletteOffset float32
	Processor     coloring.Processor
}

// DefaultConfig returns an 800×600 configuration with 200 iterations.
func DefaultConfig() Config {
	return Config{
		Width:         800,
		Height:        600,
		MaxIterations: 200,
		Palette:       palette.Classic,
		Processor:     coloring.Palette,
	}
}

// normalized clamps negative dimensions to zero.
func (c Config) normalized() Config {
	c.Width = max(c.Width, 0)
	c.Height = max(c.Height, 0)
	return c
}

// renderSize returns the size of the render buffer.
func (c Config) renderSize() (w, h int) {
	if c.Supersample {
		return c.Width * 2, c.Height * 2
	}
	return c.Width, c.Height
}

func (c Config) colorContext() coloring.Context {
	return coloring.Context{
		MaxIterations: c.MaxIterations,
		Palette:       c.Palette,
		Offset:        c.PaletteOffset,
		Width:         c.Width,
		Height:        c.Height,
	}
}

// Frame is the immutable snapshot one pass renders.
type Frame struct {
	Kernel kernel.Kernel
	View   viewport.Viewport
	Config Config
}

// NewFrame builds a frame for kind centered on its default view.
func NewFrame(kind kernel.Kind, cfg Config) Frame {
	info := kind.Info()
	return Frame{
		Kernel: kernel.New(kind),
		View:   viewport.New(info.CenterX, info.CenterY, info.Zoom, cfg.Width, cfg.Height),
		Config: cfg,
	}
}

// Region is a rectangle in output pixel space.
type Region struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether r covers no pixels.
func (r Region) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Rect returns r as an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Clamp returns the part of r inside a width×height image.
func (r Region) Clamp(width, height int) Region {
	c := r.Rect().Intersect(image.Rect(0, 0, max(width, 0), max(height, 0)))
	return Region{X: c.Min.X, Y: c.Min.Y, Width: c.Dx(), Height: c.Dy()}
}

func (r Region) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}

// State is the phase of the engine.
type State uint8

// Engine states.
const (
	Idle State = iota
	RenderingFull
	RenderingRegions
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case RenderingFull:
		return "rendering full frame"
	case RenderingRegions:
		return "rendering regions"
	default:
		return fmt.Sprintf("State(%d)", s)
	}
}

// Progress is a snapshot of the current pass.
type Progress struct {
	State State

	// Done and Total count rows of the render buffer.
	Done  int
	Total int

	Elapsed time.Duration
}

// Fraction returns Done / Total, or 1 for an empty pass.
func (p Progress) Fraction() float64 {
	if p.Total <= 0 {
		return 1
	}
	return float64(p.Done) / float64(p.Total)
}
