package engine

import (
	"context"
	"fmt"
	"image"

	"github.com/gogpu/fractal/internal/parallel"
)

// RenderHighRes renders f at scale times its configured size in one call,
// independent of the current pass. The view keeps its center, zoom and
// aspect, so the result is a sharper copy of the same frame. It checks ctx
// between chunks.
func (e *Engine) RenderHighRes(ctx context.Context, f Frame, scale int) (*image.RGBA, error) {
	if scale < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidScale, scale)
	}
	f.Config = f.Config.normalized()
	f.Config.Width *= scale
	f.Config.Height *= scale

	s := newShader(f)
	w, h := f.Config.renderSize()
	buf := image.NewRGBA(image.Rect(0, 0, w, h))
	chunk := e.ChunkRows(h)

	e.log().Info("engine: high-res render",
		"kernel", f.Kernel.Name(),
		"width", f.Config.Width, "height", f.Config.Height,
		"scale", scale)

	for y := 0; y < h; y += chunk {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		e.pool.RunBands(y, min(y+chunk, h), func(b parallel.Band) {
			s.fillRows(buf, b.Y0, b.Y1, w, h)
		})
	}

	if f.Config.Supersample {
		return e.downsample(buf), nil
	}
	return buf, nil
}
