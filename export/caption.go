package export

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/fractal/engine"
)

// DefaultCaptionSize is the caption font size in pixels.
const DefaultCaptionSize = 14

var (
	plateColor = color.RGBA{A: 160}
	textColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

var captionFont = sync.OnceValues(func() (*opentype.Font, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("export: parse caption font: %w", err)
	}
	return f, nil
})

// CaptionText formats the standard caption for f: kernel name, plane
// center and zoom.
func CaptionText(f engine.Frame) string {
	c := f.View.Center
	return fmt.Sprintf("%s  %.6f %+.6fi  zoom %.4g", f.Kernel.Name(), real(c), imag(c), f.View.Zoom)
}

// Caption draws text in the bottom-left corner of img on a translucent
// dark plate. size is the font size in pixels. Text that does not fit is
// clipped at the image edge.
func Caption(img *image.RGBA, text string, size float64) error {
	if img == nil || img.Bounds().Empty() {
		return ErrEmptyImage
	}
	if text == "" || size <= 0 {
		return nil
	}

	f, err := captionFont()
	if err != nil {
		return err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("export: caption face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	width, err := MeasureCaption(text, size)
	if err != nil {
		return err
	}

	m := face.Metrics()
	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()
	pad := int(math.Ceil(size / 3))

	b := img.Bounds()
	plate := image.Rect(
		b.Min.X,
		b.Max.Y-ascent-descent-2*pad,
		b.Min.X+int(math.Ceil(width))+2*pad,
		b.Max.Y,
	).Intersect(b)
	draw.Draw(img, plate, image.NewUniform(plateColor), image.Point{}, draw.Over)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: face,
		Dot:  fixed.P(b.Min.X+pad, b.Max.Y-pad-descent),
	}
	d.DrawString(text)
	return nil
}
