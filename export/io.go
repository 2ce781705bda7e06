package export

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/fractal/internal/logging"
	"github.com/gogpu/fractal/kernel"
	"github.com/gogpu/fractal/palette"
)

// DefaultDir is the directory Filename places exported images in.
const DefaultDir = "images"

// DefaultJPEGQuality is the quality Save uses for .jpg and .jpeg paths.
const DefaultJPEGQuality = 90

// I/O errors.
var (
	// ErrEmptyImage is returned when an image has no pixels.
	ErrEmptyImage = errors.New("export: empty image")

	// ErrUnsupportedFormat is returned when a path has an unknown extension.
	ErrUnsupportedFormat = errors.New("export: unsupported format")
)

// Filename returns the conventional path for an exported frame,
// images/<kernel>_<palette>_<width>x<height>.png.
func Filename(kind kernel.Kind, pal palette.ID, width, height int) string {
	name := fmt.Sprintf("%s_%s_%dx%d.png", kind.ID(), strings.ToLower(pal.String()), width, height)
	return filepath.Join(DefaultDir, name)
}

// Encode encodes img as PNG to w.
func Encode(w io.Writer, img image.Image) error {
	if empty(img) {
		return ErrEmptyImage
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("export: encode PNG: %w", err)
	}
	return nil
}

// EncodeJPEG encodes img as JPEG to w with the given quality (1-100).
func EncodeJPEG(w io.Writer, img image.Image, quality int) error {
	if empty(img) {
		return ErrEmptyImage
	}
	quality = min(max(quality, 1), 100)
	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("export: encode JPEG: %w", err)
	}
	return nil
}

// Save writes img to path, creating parent directories as needed. The format
// follows the extension: .png, or .jpg/.jpeg at DefaultJPEGQuality.
func Save(path string, img image.Image) error {
	var encode func(io.Writer, image.Image) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		encode = Encode
	case ".jpg", ".jpeg":
		encode = func(w io.Writer, img image.Image) error {
			return EncodeJPEG(w, img, DefaultJPEGQuality)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if empty(img) {
		return ErrEmptyImage
	}

	path = filepath.Clean(path)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("export: create directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create file: %w", err)
	}
	if err := encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: close file: %w", err)
	}

	b := img.Bounds()
	logging.Logger().Info("export: image saved", "path", path, "width", b.Dx(), "height", b.Dy())
	return nil
}

func empty(img image.Image) bool {
	return img == nil || img.Bounds().Empty()
}
