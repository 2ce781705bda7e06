// Package export writes rendered fractal frames to disk.
//
// It covers the file side of rendering: PNG and JPEG encoding, the
// conventional output file name, one-shot high-resolution renders,
// aspect-preserving thumbnails and a one-line parameter caption drawn onto
// the finished image.
//
// Caption text is shaped with go-text/typesetting (HarfBuzz) to size its
// backing plate and rasterized with golang.org/x/image/font/opentype using
// the embedded Go Regular font, so no system fonts are required.
package export
