package export

import (
	"context"
	"fmt"
	"image"
	"path/filepath"

	"github.com/gogpu/fractal/engine"
)

// Options controls Frame.
type Options struct {
	// Scale multiplies the output size. Values below 1 mean 1.
	Scale int

	// Dir overrides DefaultDir. The file name always comes from Filename.
	Dir string

	// Caption draws CaptionText(frame) in the bottom-left corner when true.
	Caption bool

	// CaptionSize is the caption font size in pixels at scale 1.
	// Zero means DefaultCaptionSize.
	CaptionSize float64
}

// HighRes renders f at scale times its configured size in one shot.
func HighRes(ctx context.Context, e *engine.Engine, f engine.Frame, scale int) (*image.RGBA, error) {
	img, err := e.RenderHighRes(ctx, f, scale)
	if err != nil {
		return nil, fmt.Errorf("export: render: %w", err)
	}
	return img, nil
}

// Frame renders f at high resolution, optionally captions it, and saves it
// under the conventional file name. It returns the path written.
func Frame(ctx context.Context, e *engine.Engine, f engine.Frame, opts Options) (string, error) {
	scale := max(opts.Scale, 1)
	img, err := HighRes(ctx, e, f, scale)
	if err != nil {
		return "", err
	}

	if opts.Caption {
		size := opts.CaptionSize
		if size <= 0 {
			size = DefaultCaptionSize
		}
		if err := Caption(img, CaptionText(f), size*float64(scale)); err != nil {
			return "", err
		}
	}

	b := img.Bounds()
	path := Filename(f.Kernel.Kind(), f.Config.Palette, b.Dx(), b.Dy())
	if opts.Dir != "" {
		path = filepath.Join(opts.Dir, filepath.Base(path))
	}
	if err := Save(path, img); err != nil {
		return "", err
	}
	return path, nil
}
