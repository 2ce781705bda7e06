// Package palette maps a normalized value in [0, 1] to an opaque color.
//
// Palettes are fixed tables of control points with piecewise-linear
// interpolation between them, except Psychedelic, which cycles hue in HSV
// space and is the only palette that honors an offset.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"
)

// ErrUnknownPalette is returned by Parse for names that match no palette.
var ErrUnknownPalette = errors.New("palette: unknown palette")

// ID selects a palette.
type ID uint8

// Palettes.
const (
	Classic ID = iota
	Fire
	Ice
	Grayscale
	Psychedelic

	idCount
)

// Black is the background color used for points inside the set.
var Black = color.RGBA{A: 255}

type stop struct{ r, g, b float32 }

var (
	classicStops = []stop{
		{0, 0, 0},
		{0, 0, 0.5},
		{0, 0, 1},
		{0, 1, 1},
		{0, 1, 0},
		{1, 1, 0},
		{1, 0, 0},
		{1, 1, 1},
	}
	fireStops = []stop{
		{0, 0, 0},
		{0.5, 0, 0},
		{1, 0, 0},
		{1, 0.5, 0},
		{1, 1, 0},
		{1, 1, 1},
	}
	iceStops = []stop{
		{0, 0, 0},
		{0, 0, 0.5},
		{0, 0, 1},
		{0, 0.5, 1},
		{0.5, 1, 1},
		{1, 1, 1},
	}
)

var names = [idCount]string{
	Classic:     "Classic",
	Fire:        "Fire",
	Ice:         "Ice",
	Grayscale:   "Grayscale",
	Psychedelic: "Psychedelic",
}

// String returns the palette name.
func (id ID) String() string {
	if id >= idCount {
		return fmt.Sprintf("ID(%d)", id)
	}
	return names[id]
}

// All returns every palette in declaration order.
func All() []ID {
	return []ID{Classic, Fire, Ice, Grayscale, Psychedelic}
}

// Parse resolves a palette name case-insensitively.
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	for id := range idCount {
		if strings.EqualFold(s, names[id]) {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPalette, s)
}

// Color returns the color of palette id at t. Values of t outside [0, 1] are
// clamped. offset rotates the hue of Psychedelic and is ignored elsewhere.
// Unknown ids use Classic.
func Color(id ID, t, offset float32) color.RGBA {
	if t != t { // NaN
		t = 0
	}
	switch id {
	case Fire:
		return interpolate(fireStops, t)
	case Ice:
		return interpolate(iceStops, t)
	case Grayscale:
		v := channel(clamp01(t))
		return color.RGBA{R: v, G: v, B: v, A: 255}
	case Psychedelic:
		h := t + offset
		h -= float32(math.Floor(float64(h)))
		r, g, b := hsvToRGB(h, 1, 0.5)
		return color.RGBA{R: channel(r), G: channel(g), B: channel(b), A: 255}
	default:
		return interpolate(classicStops, t)
	}
}

func interpolate(stops []stop, t float32) color.RGBA {
	last := len(stops) - 1
	idx := clamp01(t) * float32(last)
	i := int(idx)
	if i >= last {
		s := stops[last]
		return color.RGBA{R: channel(s.r), G: channel(s.g), B: channel(s.b), A: 255}
	}
	f := idx - float32(i)
	a, b := stops[i], stops[i+1]
	return color.RGBA{
		R: channel(a.r + (b.r-a.r)*f),
		G: channel(a.g + (b.g-a.g)*f),
		B: channel(a.b + (b.b-a.b)*f),
		A: 255,
	}
}

// hsvToRGB converts HSV with all components in [0, 1].
func hsvToRGB(h, s, v float32) (r, g, b float32) {
	i := int(math.Floor(float64(h * 6)))
	f := h*6 - float32(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	switch i % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

func clamp01(t float32) float32 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// channel scales a [0, 1] component to a byte, truncating.
func channel(c float32) uint8 {
	v := c * 255
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v) //nolint:gosec // G115: v is in (0, 255)
}
