package export

import (
	"image"

	"golang.org/x/image/draw"
)

// Thumbnail scales src down to fit within maxWidth×maxHeight, preserving its
// aspect ratio. Images that already fit are copied unscaled. Large reductions
// use bilinear filtering; small ones use Catmull-Rom for sharper edges.
func Thumbnail(src image.Image, maxWidth, maxHeight int) (*image.RGBA, error) {
	if empty(src) || maxWidth <= 0 || maxHeight <= 0 {
		return nil, ErrEmptyImage
	}
	sb := src.Bounds()
	w, h := fit(sb.Dx(), sb.Dy(), maxWidth, maxHeight)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))

	var scaler draw.Scaler = draw.CatmullRom
	switch {
	case w == sb.Dx() && h == sb.Dy():
		draw.Draw(dst, dst.Bounds(), src, sb.Min, draw.Src)
		return dst, nil
	case sb.Dx() >= 4*w:
		scaler = draw.ApproxBiLinear
	}
	scaler.Scale(dst, dst.Bounds(), src, sb, draw.Src, nil)
	return dst, nil
}

// fit returns the largest size with the aspect ratio of w×h that fits in
// maxW×maxH without upscaling. Both results are at least 1.
func fit(w, h, maxW, maxH int) (int, int) {
	if w <= maxW && h <= maxH {
		return w, h
	}
	// Compare w/maxW against h/maxH without floating point.
	if w*maxH >= h*maxW {
		return maxW, max(h*maxW/w, 1)
	}
	return max(w*maxH/h, 1), maxH
}
