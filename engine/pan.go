package engine

import (
	"image"

	"github.com/gogpu/fractal/viewport"
)

// PanRegions shifts img in place by the pixel displacement that
// view.PanFixed(dx, dy) implies and returns the edge strips that must be
// re-rendered: one for a purely horizontal or vertical shift, two when both
// components are non-zero. A sub-pixel pan leaves img untouched and returns
// nil; the caller must then re-render the whole frame.
//
// Only the aspect ratio of view matters; the shift does not depend on zoom.
func PanRegions(img *image.RGBA, view viewport.Viewport, dx, dy float64) []Region {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil
	}
	sx, sy := view.PixelShift(dx, dy, w, h)
	if sx == 0 && sy == 0 {
		return nil
	}
	ShiftPixels(img, sx, sy)
	return exposed(w, h, sx, sy)
}

// exposed returns the strips uncovered by a shift of (sx, sy).
func exposed(w, h, sx, sy int) []Region {
	sx = min(max(sx, -w), w)
	sy = min(max(sy, -h), h)

	var regions []Region
	switch {
	case sx > 0:
		regions = append(regions, Region{X: 0, Y: 0, Width: sx, Height: h})
	case sx < 0:
		regions = append(regions, Region{X: w + sx, Y: 0, Width: -sx, Height: h})
	}
	switch {
	case sy > 0:
		regions = append(regions, Region{X: 0, Y: 0, Width: w, Height: sy})
	case sy < 0:
		regions = append(regions, Region{X: 0, Y: h + sy, Width: w, Height: -sy})
	}
	return regions
}

// ShiftPixels moves the content of img by (sx, sy) pixels in place. Positive
// sx moves right and positive sy moves down. Pixels pushed off the edge are
// lost; uncovered pixels become opaque black.
func ShiftPixels(img *image.RGBA, sx, sy int) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 || (sx == 0 && sy == 0) {
		return
	}
	if sx >= w || -sx >= w || sy >= h || -sy >= h {
		fillBlack(img, 0, h, 0, w)
		return
	}

	rowOf := func(y int) []byte {
		off := img.PixOffset(b.Min.X, b.Min.Y+y)
		return img.Pix[off : off+w*4]
	}
	move := func(y int) {
		dst, src := rowOf(y), rowOf(y-sy)
		if sx >= 0 {
			copy(dst[sx*4:], src[:(w-sx)*4])
		} else {
			copy(dst[:(w+sx)*4], src[-sx*4:])
		}
	}

	// Walk away from the destination side so no source row is overwritten
	// before it is read.
	if sy > 0 {
		for y := h - 1; y >= sy; y-- {
			move(y)
		}
		fillBlack(img, 0, sy, 0, w)
	} else {
		for y := 0; y < h+sy; y++ {
			move(y)
		}
		fillBlack(img, h+sy, h, 0, w)
	}

	switch {
	case sx > 0:
		fillBlack(img, 0, h, 0, sx)
	case sx < 0:
		fillBlack(img, 0, h, w+sx, w)
	}
}

// fillBlack paints rows [y0, y1) × columns [x0, x1), relative to the image
// origin, opaque black.
func fillBlack(img *image.RGBA, y0, y1, x0, x1 int) {
	b := img.Bounds()
	for y := y0; y < y1; y++ {
		off := img.PixOffset(b.Min.X+x0, b.Min.Y+y)
		blacken(img.Pix[off : off+(x1-x0)*4])
	}
}

// StartPan shifts prev, the finished image of the previous frame, and starts
// a region pass that re-renders the exposed strips of f into it. f.View must
// already include the pan. It reports false, leaving the engine untouched,
// when the pan is below one pixel or prev does not match f's output size.
func (e *Engine) StartPan(f Frame, prev *image.RGBA, dx, dy float64) bool {
	cfg := f.Config.normalized()
	if prev == nil || prev.Bounds() != image.Rect(0, 0, cfg.Width, cfg.Height) {
		return false
	}
	regions := PanRegions(prev, f.View, dx, dy)
	if len(regions) == 0 {
		return false
	}
	e.StartRegions(f, prev, regions)
	return true
}
