package engine

import (
	"image"

	"github.com/gogpu/fractal/internal/parallel"
)

// Downsample applies a 2×2 box filter to src, returning an image half its
// width and height. Each output channel is the truncated mean of the four
// source pixels; alpha is opaque. An odd trailing row or column is dropped.
func Downsample(src *image.RGBA) *image.RGBA {
	dst := newHalf(src)
	downsampleRows(dst, src, 0, dst.Rect.Dy())
	return dst
}

// downsample is Downsample spread across the worker pool.
func (e *Engine) downsample(src *image.RGBA) *image.RGBA {
	dst := newHalf(src)
	e.pool.RunBands(0, dst.Rect.Dy(), func(b parallel.Band) {
		downsampleRows(dst, src, b.Y0, b.Y1)
	})
	return dst
}

func newHalf(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	return image.NewRGBA(image.Rect(0, 0, b.Dx()/2, b.Dy()/2))
}

func downsampleRows(dst, src *image.RGBA, y0, y1 int) {
	w := dst.Rect.Dx()
	sb := src.Bounds()
	for y := y0; y < y1; y++ {
		top := src.PixOffset(sb.Min.X, sb.Min.Y+2*y)
		bot := top + src.Stride
		out := dst.Pix[y*dst.Stride : y*dst.Stride+w*4]
		for x := range w {
			i := top + x*8
			j := bot + x*8
			for c := range 3 {
				sum := int(src.Pix[i+c]) + int(src.Pix[i+4+c]) +
					int(src.Pix[j+c]) + int(src.Pix[j+4+c])
				out[x*4+c] = uint8(sum / 4) //nolint:gosec // G115: mean of bytes
			}
			out[x*4+3] = 255
		}
	}
}
