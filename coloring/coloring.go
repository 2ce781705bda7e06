// Package coloring turns escape records into pixel colors.
//
// A Pipeline is one of a closed set of strategies: flat palette lookup,
// smooth (continuous) iteration count, and orbit-trap distance fields. Every
// strategy renders points inside the set as palette.Black.
package coloring

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/gogpu/fractal/kernel"
	"github.com/gogpu/fractal/palette"
)

// ErrUnknownProcessor is returned by Parse for names that match no processor.
var ErrUnknownProcessor = errors.New("coloring: unknown processor")

// Processor selects a coloring strategy.
type Processor uint8

// Processors.
const (
	Palette Processor = iota
	Smooth
	OrbitTrapReal
	OrbitTrapImag
	OrbitTrapOrigin

	processorCount
)

var processorNames = [processorCount]string{
	Palette:         "Standard Palette",
	Smooth:          "Smooth Coloring",
	OrbitTrapReal:   "Orbit Trap (Real Axis)",
	OrbitTrapImag:   "Orbit Trap (Imaginary Axis)",
	OrbitTrapOrigin: "Orbit Trap (Origin)",
}

var processorIDs = [processorCount]string{
	Palette:         "palette",
	Smooth:          "smooth",
	OrbitTrapReal:   "trap-real",
	OrbitTrapImag:   "trap-imag",
	OrbitTrapOrigin: "trap-origin",
}

// String returns the display name of p.
func (p Processor) String() string {
	if p >= processorCount {
		return fmt.Sprintf("Processor(%d)", p)
	}
	return processorNames[p]
}

// ID returns the short identifier of p, e.g. "trap-real".
func (p Processor) ID() string {
	if p >= processorCount {
		return ""
	}
	return processorIDs[p]
}

// Processors returns every processor in declaration order.
func Processors() []Processor {
	return []Processor{Palette, Smooth, OrbitTrapReal, OrbitTrapImag, OrbitTrapOrigin}
}

// Parse resolves a short identifier or display name, case-insensitively.
func Parse(s string) (Processor, error) {
	s = strings.TrimSpace(s)
	for p := range processorCount {
		if strings.EqualFold(s, processorIDs[p]) || strings.EqualFold(s, processorNames[p]) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownProcessor, s)
}

// Context carries the per-frame inputs shared by every pixel.
type Context struct {
	MaxIterations uint32
	Palette       palette.ID
	Offset        float32
	Width         int
	Height        int
}

// Trap is the geometric feature an orbit-trap pipeline measures against.
type Trap uint8

// Traps.
const (
	TrapRealAxis Trap = iota
	TrapImagAxis
	TrapOrigin
	TrapCross
)

type mode uint8

const (
	modePalette mode = iota
	modeSmooth
	modeTrap
)

// Pipeline is a configured coloring strategy. It is a small value and safe
// for concurrent use.
type Pipeline struct {
	mode      mode
	smooth    bool
	trap      Trap
	threshold float64
}

// New returns the pipeline for processor p. Unknown processors use Palette.
func New(p Processor) Pipeline {
	switch p {
	case Smooth:
		return NewSmooth(true)
	case OrbitTrapReal:
		return NewOrbitTrap(TrapRealAxis, 0.1)
	case OrbitTrapImag:
		return NewOrbitTrap(TrapImagAxis, 0.1)
	case OrbitTrapOrigin:
		return NewOrbitTrap(TrapOrigin, 0.5)
	default:
		return Pipeline{mode: modePalette}
	}
}

// NewSmooth returns a smooth-coloring pipeline. With enabled false it
// degrades to the discrete iteration ratio.
func NewSmooth(enabled bool) Pipeline {
	return Pipeline{mode: modeSmooth, smooth: enabled}
}

// NewOrbitTrap returns a pipeline shading by the minimum orbit distance to
// trap. Distances at or beyond threshold contribute nothing. A non-positive
// threshold is replaced by 0.1.
func NewOrbitTrap(trap Trap, threshold float64) Pipeline {
	if !(threshold > 0) {
		threshold = 0.1
	}
	return Pipeline{mode: modeTrap, trap: trap, threshold: threshold}
}

// Name returns a short description of the pipeline.
func (p Pipeline) Name() string {
	switch p.mode {
	case modeSmooth:
		if p.smooth {
			return "Smooth Coloring"
		}
		return "Discrete Coloring"
	case modeTrap:
		switch p.trap {
		case TrapRealAxis:
			return "Real Axis Trap"
		case TrapImagAxis:
			return "Imaginary Axis Trap"
		case TrapOrigin:
			return "Origin Trap"
		default:
			return "Cross Trap"
		}
	default:
		return "Palette"
	}
}

// Process returns the color of one pixel.
func (p Pipeline) Process(rec kernel.EscapeRecord, ctx Context) color.RGBA {
	if !rec.Escaped {
		return palette.Black
	}
	var t float32
	switch p.mode {
	case modeSmooth:
		t = p.smoothT(rec, ctx)
	case modeTrap:
		t = p.trapT(rec, ctx)
	default:
		t = ratio(rec.Iterations, ctx.MaxIterations)
	}
	return palette.Color(ctx.Palette, t, ctx.Offset)
}

func (p Pipeline) smoothT(rec kernel.EscapeRecord, ctx Context) float32 {
	z, ok := rec.Final()
	if !p.smooth || !ok || ctx.MaxIterations == 0 {
		return ratio(rec.Iterations, ctx.MaxIterations)
	}
	n := float64(rec.Iterations) - 1 + smoothAdd(z)
	if n < 0 {
		n = 0
	}
	t := n / float64(ctx.MaxIterations)
	return float32(t - math.Floor(t))
}

// smoothAdd returns the fractional escape correction 1 - log2(ln|z|),
// with the log term floored at zero. Non-finite logs count as zero.
func smoothAdd(z complex128) float64 {
	nu := math.Log(math.Log(math.Hypot(real(z), imag(z)))) / math.Ln2
	if math.IsNaN(nu) || math.IsInf(nu, 0) || nu < 0 {
		nu = 0
	}
	return 1 - nu
}

func (p Pipeline) trapT(rec kernel.EscapeRecord, ctx Context) float32 {
	var d float64
	o := rec.Orbit
	switch p.trap {
	case TrapRealAxis:
		d = o.MinDistRealAxis
	case TrapImagAxis:
		d = o.MinDistImagAxis
	case TrapOrigin:
		d = o.MinDistOrigin
	default:
		d = math.Min(o.MinDistRealAxis, o.MinDistImagAxis)
	}
	proximity := float32(1 - math.Min(d/p.threshold, 1))
	return proximity*0.7 + ratio(rec.Iterations, ctx.MaxIterations)*0.3
}

func ratio(n, maxIter uint32) float32 {
	if maxIter == 0 {
		return 0
	}
	return float32(n) / float32(maxIter)
}
