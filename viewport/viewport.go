// Package viewport maps between pixel space and the complex plane.
//
// At zoom 1 the window is 4 plane units tall and 4·aspect units wide. Screen
// Y grows downward while plane Y grows upward, so the vertical axis is
// flipped.
package viewport

import "math"

// span is the plane height shown at zoom 1.
const span = 4.0

// Viewport is a pan/zoom transform. It is a plain value: copy it to take a
// snapshot.
type Viewport struct {
	// Center is the plane point shown at the middle of the screen.
	Center complex128

	// Zoom is the magnification; it must be positive.
	Zoom float64

	// Aspect is width / height.
	Aspect float64
}

// Rect is an axis-aligned rectangle in the complex plane.
type Rect struct {
	Min complex128
	Max complex128
}

// Width returns the real extent of r.
func (r Rect) Width() float64 { return real(r.Max) - real(r.Min) }

// Height returns the imaginary extent of r.
func (r Rect) Height() float64 { return imag(r.Max) - imag(r.Min) }

// Contains reports whether z lies inside r, edges included.
func (r Rect) Contains(z complex128) bool {
	return real(z) >= real(r.Min) && real(z) <= real(r.Max) &&
		imag(z) >= imag(r.Min) && imag(z) <= imag(r.Max)
}

// New returns a viewport centered at (cx, cy) for a width×height screen.
// A non-positive zoom becomes 1 and degenerate dimensions give aspect 1.
func New(cx, cy, zoom float64, width, height int) Viewport {
	v := Viewport{Center: complex(cx, cy), Zoom: 1, Aspect: 1}
	v.SetZoom(zoom)
	v.SetDimensions(width, height)
	return v
}

// SetDimensions updates the aspect ratio for a width×height screen.
// Non-positive dimensions are ignored.
func (v *Viewport) SetDimensions(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	v.Aspect = float64(width) / float64(height)
}

// SetZoom sets the zoom level. Non-positive, NaN and infinite values are
// ignored.
func (v *Viewport) SetZoom(zoom float64) {
	if !(zoom > 0) || math.IsInf(zoom, 0) {
		return
	}
	v.Zoom = zoom
}

// ScreenToWorld returns the plane point under pixel (x, y). A screen with no
// area maps everything to Center.
func (v Viewport) ScreenToWorld(x, y, width, height int) complex128 {
	if width <= 0 || height <= 0 {
		return v.Center
	}
	u := float64(x) / float64(width)
	w := float64(y) / float64(height)
	re := real(v.Center) + (u-0.5)*span*v.Aspect/v.Zoom
	im := imag(v.Center) - (w-0.5)*span/v.Zoom
	return complex(re, im)
}

// WorldToScreen returns the pixel containing z. Truncation makes it the
// inverse of ScreenToWorld only to within one pixel.
func (v Viewport) WorldToScreen(z complex128, width, height int) (x, y int) {
	dx := (real(z) - real(v.Center)) * v.Zoom / (span * v.Aspect)
	dy := -(imag(z) - imag(v.Center)) * v.Zoom / span
	return int((dx + 0.5) * float64(width)), int((dy + 0.5) * float64(height))
}

// PanFixed moves the center by half a zoom-scaled unit per step, the
// keyboard pan. Positive dy moves up.
func (v *Viewport) PanFixed(dx, dy float64) {
	step := 0.5 / v.Zoom
	v.Center += complex(dx*step, dy*step)
}

// Pan moves the center by a drag of (dx, dy) screen pixels on a screen
// whose height is size pixels, and returns the plane delta applied.
func (v *Viewport) Pan(dx, dy, size float64) complex128 {
	if size <= 0 {
		return 0
	}
	unit := v.WorldUnitsPerPixel(size)
	delta := complex(dx*unit*v.Aspect, -dy*unit)
	v.Center += delta
	return delta
}

// ZoomBy multiplies the zoom by factor, keeping the center fixed.
func (v *Viewport) ZoomBy(factor float64) {
	v.SetZoom(v.Zoom * factor)
}

// ZoomAt multiplies the zoom by factor while keeping the plane point under
// pixel (fx, fy) in place.
func (v *Viewport) ZoomAt(factor float64, fx, fy, width, height int) {
	if !(factor > 0) || math.IsInf(factor, 0) {
		return
	}
	focus := v.ScreenToWorld(fx, fy, width, height)
	offset := focus - v.Center
	v.ZoomBy(factor)
	v.Center = focus - offset/complex(factor, 0)
}

// VisibleRect returns the plane rectangle currently on screen.
func (v Viewport) VisibleRect() Rect {
	hw := span / 2 * v.Aspect / v.Zoom
	hh := span / 2 / v.Zoom
	return Rect{
		Min: v.Center - complex(hw, hh),
		Max: v.Center + complex(hw, hh),
	}
}

// PixelShift returns how far existing content moves, in pixels, when the
// view is panned by PanFixed(dx, dy). The result is truncated toward zero.
func (v Viewport) PixelShift(dx, dy float64, width, height int) (sx, sy int) {
	if v.Aspect <= 0 {
		return 0, 0
	}
	// One PanFixed unit is 1/8 of the window in either direction,
	// independent of zoom.
	sx = int(-dx * float64(width) / (2 * span * v.Aspect))
	sy = int(dy * float64(height) / (2 * span))
	return sx, sy
}

// WorldUnitsPerPixel returns the plane distance covered by one pixel of a
// screen that is size pixels tall.
func (v Viewport) WorldUnitsPerPixel(size float64) float64 {
	return span / (size * v.Zoom)
}
