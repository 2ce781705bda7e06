package engine

import (
	"image"
	"image/color"

	"github.com/gogpu/fractal/coloring"
	"github.com/gogpu/fractal/kernel"
	"github.com/gogpu/fractal/viewport"
)

// shader evaluates one sample: pixel → plane → kernel → color.
type shader struct {
	kernel   kernel.Kernel
	view     viewport.Viewport
	pipeline coloring.Pipeline
	ctx      coloring.Context
	maxIter  uint32
}

func newShader(f Frame) *shader {
	return &shader{
		kernel:   f.Kernel,
		view:     f.View,
		pipeline: coloring.New(f.Config.Processor),
		ctx:      f.Config.colorContext(),
		maxIter:  f.Config.MaxIterations,
	}
}

// at colors pixel (x, y) of a width×height grid.
func (s *shader) at(x, y, width, height int) color.RGBA {
	z := s.view.ScreenToWorld(x, y, width, height)
	rec := s.kernel.ComputeFull(real(z), imag(z), s.maxIter)
	return s.pipeline.Process(rec, s.ctx)
}

// supersampled colors output pixel (x, y) of a width×height image by
// averaging its four samples on the 2× grid.
func (s *shader) supersampled(x, y, width, height int) color.RGBA {
	var r, g, b int
	for dy := range 2 {
		for dx := range 2 {
			c := s.at(2*x+dx, 2*y+dy, 2*width, 2*height)
			r += int(c.R)
			g += int(c.G)
			b += int(c.B)
		}
	}
	return color.RGBA{R: uint8(r / 4), G: uint8(g / 4), B: uint8(b / 4), A: 255} //nolint:gosec // G115: averages of bytes
}

// fillRows renders rows [y0, y1) of img, which is the whole width×height
// sample grid. Each row is written only by the caller that owns it.
func (s *shader) fillRows(img *image.RGBA, y0, y1, width, height int) {
	for y := y0; y < y1; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for x := range width {
			c := s.at(x, y, width, height)
			i := x * 4
			row[i+0] = c.R
			row[i+1] = c.G
			row[i+2] = c.B
			row[i+3] = 255
		}
	}
}

// blacken fills RGBA pixel bytes with opaque black.
func blacken(pix []byte) {
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i+0] = 0
		pix[i+1] = 0
		pix[i+2] = 0
		pix[i+3] = 255
	}
}
