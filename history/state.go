package history

import (
	"fmt"
	"maps"

	"github.com/gogpu/fractal/coloring"
	"github.com/gogpu/fractal/engine"
	"github.com/gogpu/fractal/kernel"
	"github.com/gogpu/fractal/palette"
	"github.com/gogpu/fractal/viewport"
)

// State is a reproducible view of one kernel.
type State struct {
	Kernel        string             `json:"kernel"`
	CenterX       float64            `json:"center_x"`
	CenterY       float64            `json:"center_y"`
	Zoom          float64            `json:"zoom"`
	MaxIterations uint32             `json:"max_iterations"`
	Palette       string             `json:"palette"`
	PaletteOffset float32            `json:"palette_offset,omitempty"`
	Processor     string             `json:"processor,omitempty"`
	Supersample   bool               `json:"supersample,omitempty"`
	Params        map[string]float64 `json:"params,omitempty"`
}

// Capture snapshots f.
func Capture(f engine.Frame) State {
	s := State{
		Kernel:        f.Kernel.Kind().ID(),
		CenterX:       real(f.View.Center),
		CenterY:       imag(f.View.Center),
		Zoom:          f.View.Zoom,
		MaxIterations: f.Config.MaxIterations,
		Palette:       f.Config.Palette.String(),
		PaletteOffset: f.Config.PaletteOffset,
		Processor:     f.Config.Processor.ID(),
		Supersample:   f.Config.Supersample,
	}
	if ps := f.Kernel.Parameters(); len(ps) > 0 {
		s.Params = make(map[string]float64, len(ps))
		for _, p := range ps {
			s.Params[p.Name] = p.Value
		}
	}
	return s
}

// Clone returns a copy of s that shares no memory with it.
func (s State) Clone() State {
	s.Params = maps.Clone(s.Params)
	return s
}

// NewKernel builds the kernel named by s with its parameters applied.
// Unknown parameter names are ignored and values are clamped, as
// kernel.Kernel.SetParameter does.
func (s State) NewKernel() (kernel.Kernel, error) {
	kind, err := kernel.Parse(s.Kernel)
	if err != nil {
		return kernel.Kernel{}, fmt.Errorf("history: %w", err)
	}
	k := kernel.New(kind)
	for name, v := range s.Params {
		k.SetParameter(name, v)
	}
	return k, nil
}

// Viewport returns the view of s for a width×height window.
func (s State) Viewport(width, height int) viewport.Viewport {
	return viewport.New(s.CenterX, s.CenterY, s.Zoom, width, height)
}

// Config returns the render configuration of s at width×height. An empty
// processor means the plain palette processor.
func (s State) Config(width, height int) (engine.Config, error) {
	pal, err := palette.Parse(s.Palette)
	if err != nil {
		return engine.Config{}, fmt.Errorf("history: %w", err)
	}
	proc := coloring.Palette
	if s.Processor != "" {
		if proc, err = coloring.Parse(s.Processor); err != nil {
			return engine.Config{}, fmt.Errorf("history: %w", err)
		}
	}
	return engine.Config{
		Width:         width,
		Height:        height,
		Supersample:   s.Supersample,
		MaxIterations: s.MaxIterations,
		Palette:       pal,
		PaletteOffset: s.PaletteOffset,
		Processor:     proc,
	}, nil
}

// Frame rebuilds the complete frame of s at width×height.
func (s State) Frame(width, height int) (engine.Frame, error) {
	k, err := s.NewKernel()
	if err != nil {
		return engine.Frame{}, err
	}
	cfg, err := s.Config(width, height)
	if err != nil {
		return engine.Frame{}, err
	}
	return engine.Frame{
		Kernel: k,
		View:   s.Viewport(width, height),
		Config: cfg,
	}, nil
}
