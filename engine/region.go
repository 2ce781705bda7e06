package engine

import (
	"image"
	"image/color"

	"github.com/gogpu/fractal/internal/parallel"
)

// RenderRegion renders one chunk of region r of f: output rows
// [r.Y+yStart, r.Y+yStart+chunkSize) clipped to the region. The returned
// image is positioned in output pixel coordinates, ready to be drawn onto
// the frame at its own bounds. ok is false once yStart is past the region
// or the region is empty after clamping to the output size.
//
// With supersampling each output pixel averages its four samples on the 2×
// grid. RenderRegion does not touch the current pass.
func (e *Engine) RenderRegion(f Frame, r Region, yStart, chunkSize int) (img *image.RGBA, ok bool) {
	f.Config = f.Config.normalized()
	r = r.Clamp(f.Config.Width, f.Config.Height)
	if chunkSize <= 0 {
		chunkSize = e.ChunkRows(r.Height)
	}
	return e.renderRegion(newShader(f), f.Config, r, yStart, chunkSize)
}

// renderRegion expects r already clamped to the output.
func (e *Engine) renderRegion(s *shader, cfg Config, r Region, yStart, chunkSize int) (*image.RGBA, bool) {
	if r.Empty() {
		return nil, false
	}
	yStart = max(yStart, 0)
	if yStart >= r.Height || chunkSize <= 0 {
		return nil, false
	}
	rows := min(chunkSize, r.Height-yStart)
	top := r.Y + yStart
	img := image.NewRGBA(image.Rect(r.X, top, r.X+r.Width, top+rows))

	w, h := cfg.Width, cfg.Height
	e.pool.RunBands(0, rows, func(b parallel.Band) {
		for ly := b.Y0; ly < b.Y1; ly++ {
			y := top + ly
			row := img.Pix[ly*img.Stride : ly*img.Stride+r.Width*4]
			for lx := range r.Width {
				x := r.X + lx
				var c color.RGBA
				if cfg.Supersample {
					c = s.supersampled(x, y, w, h)
				} else {
					c = s.at(x, y, w, h)
				}
				i := lx * 4
				row[i+0] = c.R
				row[i+1] = c.G
				row[i+2] = c.B
				row[i+3] = 255
			}
		}
	})
	return img, true
}
