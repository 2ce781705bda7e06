package main

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"image"

	"github.com/gogpu/fractal/engine"
	"github.com/gogpu/fractal/history"
)

// headerSize is the length of the binary chunk header: x, y, width and
// height of the chunk as little-endian uint32.
const headerSize = 16

// renderRequest is the first and only client message on /render.
type renderRequest struct {
	history.State
	Width  int `json:"width"`
	Height int `json:"height"`
}

// frame validates r and rebuilds its frame. maxSide bounds both dimensions.
func (r renderRequest) frame(maxSide int) (engine.Frame, error) {
	if r.Width <= 0 || r.Height <= 0 || r.Width > maxSide || r.Height > maxSide {
		return engine.Frame{}, fmt.Errorf("size %dx%d outside 1..%d", r.Width, r.Height, maxSide)
	}
	if r.MaxIterations == 0 {
		return engine.Frame{}, fmt.Errorf("max_iterations must be positive")
	}
	return r.State.Frame(r.Width, r.Height)
}

// key identifies the rendered result of r. encoding/json sorts map keys, so
// equal requests produce equal keys.
func (r renderRequest) key() string {
	b, _ := json.Marshal(r)
	return string(b)
}

// doneMessage ends a successful stream.
type doneMessage struct {
	Type      string `json:"type"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Chunks    int    `json:"chunks"`
	Cached    bool   `json:"cached"`
	ElapsedMS int64  `json:"elapsed_ms"`
}

// errorMessage ends a failed stream.
type errorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// encodeChunk packs the full-width rows of img into one binary message.
func encodeChunk(img *image.RGBA) []byte {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	msg := make([]byte, headerSize+w*h*4)
	binary.LittleEndian.PutUint32(msg[0:], uint32(b.Min.X))
	binary.LittleEndian.PutUint32(msg[4:], uint32(b.Min.Y))
	binary.LittleEndian.PutUint32(msg[8:], uint32(w))
	binary.LittleEndian.PutUint32(msg[12:], uint32(h))

	dst := msg[headerSize:]
	for y := range h {
		off := img.PixOffset(b.Min.X, b.Min.Y+y)
		copy(dst[y*w*4:(y+1)*w*4], img.Pix[off:off+w*4])
	}
	return msg
}

// decodeChunk is the inverse of encodeChunk.
func decodeChunk(msg []byte) (*image.RGBA, error) {
	if len(msg) < headerSize {
		return nil, fmt.Errorf("chunk of %d bytes is shorter than its header", len(msg))
	}
	x := int(binary.LittleEndian.Uint32(msg[0:]))
	y := int(binary.LittleEndian.Uint32(msg[4:]))
	w := int(binary.LittleEndian.Uint32(msg[8:]))
	h := int(binary.LittleEndian.Uint32(msg[12:]))
	if len(msg)-headerSize != w*h*4 {
		return nil, fmt.Errorf("chunk %dx%d carries %d pixel bytes", w, h, len(msg)-headerSize)
	}
	img := image.NewRGBA(image.Rect(x, y, x+w, y+h))
	copy(img.Pix, msg[headerSize:])
	return img, nil
}
