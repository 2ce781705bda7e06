package coloring

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/fractal/kernel"
	"github.com/gogpu/fractal/palette"
)

var ctx = Context{MaxIterations: 100, Palette: palette.Classic, Width: 64, Height: 64}

func allPipelines() []Pipeline {
	ps := []Pipeline{NewSmooth(false), NewOrbitTrap(TrapCross, 0.2)}
	for _, p := range Processors() {
		ps = append(ps, New(p))
	}
	return ps
}

func TestInsideIsBlack(t *testing.T) {
	rec := kernel.Inside(100, kernel.NewOrbitStats())
	for _, p := range allPipelines() {
		if got := p.Process(rec, ctx); got != palette.Black {
			t.Errorf("%s: inside color = %v, want black", p.Name(), got)
		}
	}
}

func TestEscapedIsNotBlack(t *testing.T) {
	k := kernel.New(kernel.Mandelbrot)
	rec := k.ComputeFull(0.5, 0.5, ctx.MaxIterations)
	if !rec.Escaped {
		t.Fatal("(0.5, 0.5) did not escape")
	}
	for _, p := range allPipelines() {
		if got := p.Process(rec, ctx); got == palette.Black {
			t.Errorf("%s: escaped color is black", p.Name())
		}
	}
}

func TestPaletteRatio(t *testing.T) {
	rec := kernel.Escape(50, complex(3, 0), kernel.NewOrbitStats())
	got := New(Palette).Process(rec, ctx)
	want := palette.Color(palette.Classic, 0.5, 0)
	if got != want {
		t.Errorf("Process = %v, want %v", got, want)
	}
}

func TestPaletteZeroBudget(t *testing.T) {
	rec := kernel.Escape(0, complex(3, 0), kernel.NewOrbitStats())
	c := ctx
	c.MaxIterations = 0
	if got := New(Palette).Process(rec, c); got != palette.Black {
		t.Errorf("Process with zero budget = %v, want black", got)
	}
}

func TestSmoothGuards(t *testing.T) {
	want := palette.Color(palette.Classic, float32(3.0/100), 0)
	for _, z := range []complex128{
		complex(0.5, 0),
		0,
		complex(math.Inf(1), 0),
		complex(math.NaN(), 1),
	} {
		rec := kernel.Escape(3, z, kernel.NewOrbitStats())
		if got := New(Smooth).Process(rec, ctx); got != want {
			t.Errorf("Process(final %v) = %v, want %v", z, got, want)
		}
	}
}

func TestSmoothContinuous(t *testing.T) {
	// Larger |z| at the same count shades slightly earlier.
	near := kernel.Escape(10, complex(2.5, 0), kernel.NewOrbitStats())
	far := kernel.Escape(10, complex(50, 0), kernel.NewOrbitStats())
	p := New(Smooth)
	if tn, tf := p.smoothT(near, ctx), p.smoothT(far, ctx); !(tf < tn) {
		t.Errorf("smoothT far = %v, near = %v, want far < near", tf, tn)
	}
}

func TestSmoothWraps(t *testing.T) {
	p := New(Smooth)
	for n := uint32(1); n <= 300; n += 7 {
		rec := kernel.Escape(n, complex(3, 4), kernel.NewOrbitStats())
		v := p.smoothT(rec, ctx)
		if v < 0 || v >= 1 {
			t.Errorf("smoothT(%d) = %v, want [0, 1)", n, v)
		}
	}
}

func TestSmoothDisabledMatchesPalette(t *testing.T) {
	rec := kernel.Escape(37, complex(3, 4), kernel.NewOrbitStats())
	if a, b := NewSmooth(false).Process(rec, ctx), New(Palette).Process(rec, ctx); a != b {
		t.Errorf("discrete smooth = %v, palette = %v", a, b)
	}
}

func TestOrbitTrap(t *testing.T) {
	stats := kernel.NewOrbitStats()
	stats.Update(0.3, 0)
	rec := kernel.Escape(0, complex(3, 0), stats)

	got := New(OrbitTrapReal).Process(rec, ctx)
	want := palette.Color(palette.Classic, 0.7, 0)
	if got != want {
		t.Errorf("real-axis trap = %v, want %v", got, want)
	}

	// 0.3 from the imaginary axis is beyond the 0.1 threshold.
	if got := New(OrbitTrapImag).Process(rec, ctx); got != palette.Black {
		t.Errorf("imaginary-axis trap = %v, want black", got)
	}

	// 0.3 from the origin with threshold 0.5 gives proximity 0.4.
	got = New(OrbitTrapOrigin).Process(rec, ctx)
	want = palette.Color(palette.Classic, float32(1-0.3/0.5)*0.7, 0)
	if got != want {
		t.Errorf("origin trap = %v, want %v", got, want)
	}
}

func TestOrbitTrapNoData(t *testing.T) {
	rec := kernel.Escape(20, complex(3, 0), kernel.NewOrbitStats())
	got := New(OrbitTrapOrigin).Process(rec, ctx)
	want := palette.Color(palette.Classic, 0.2*0.3, 0)
	if got != want {
		t.Errorf("Process = %v, want %v", got, want)
	}
}

func TestNames(t *testing.T) {
	if got := OrbitTrapImag.String(); got != "Orbit Trap (Imaginary Axis)" {
		t.Errorf("String() = %q", got)
	}
	if got := NewOrbitTrap(TrapCross, 0).Name(); got != "Cross Trap" {
		t.Errorf("Name() = %q", got)
	}
	if got := NewSmooth(false).Name(); got != "Discrete Coloring" {
		t.Errorf("Name() = %q", got)
	}
}

func TestParse(t *testing.T) {
	for _, p := range Processors() {
		if got, err := Parse(p.ID()); err != nil || got != p {
			t.Errorf("Parse(%q) = %v, %v", p.ID(), got, err)
		}
		if got, err := Parse(p.String()); err != nil || got != p {
			t.Errorf("Parse(%q) = %v, %v", p.String(), got, err)
		}
	}
	if _, err := Parse("rainbow"); !errors.Is(err, ErrUnknownProcessor) {
		t.Errorf("Parse(rainbow) error = %v", err)
	}
}
