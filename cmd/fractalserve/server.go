package main

import (
	"context"
	"encoding/json"
	"image"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"golang.org/x/image/draw"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/fractal/engine"
	"github.com/gogpu/fractal/internal/cache"
	"github.com/gogpu/fractal/kernel"
)

type server struct {
	frames  *cache.Cache[string, *image.RGBA]
	workers int
	maxSide int
	origins []string
	log     *slog.Logger
	printer *message.Printer
}

func newServer(cacheSize, workers, maxSide int, origins []string, log *slog.Logger) *server {
	return &server{
		frames:  cache.New[string, *image.RGBA](cacheSize),
		workers: workers,
		maxSide: maxSide,
		origins: origins,
		log:     log,
		printer: message.NewPrinter(language.English),
	}
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /render", s.handleRender)
	mux.HandleFunc("GET /kernels", s.handleKernels)
	mux.HandleFunc("GET /stats", s.handleStats)
	return mux
}

// handleRender upgrades to a websocket, reads one renderRequest and streams
// the frame back as binary chunks followed by a doneMessage.
func (s *server) handleRender(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.origins,
	})
	if err != nil {
		s.log.Warn("websocket accept", "err", err)
		return
	}
	defer c.CloseNow()

	ctx := r.Context()
	var req renderRequest
	if err := wsjson.Read(ctx, c, &req); err != nil {
		s.log.Debug("read request", "err", err)
		return
	}

	f, err := req.frame(s.maxSide)
	if err != nil {
		s.fail(ctx, c, err)
		return
	}

	start := time.Now()
	key := req.key()
	img, cached := s.frames.Get(key)
	var chunks int
	if cached {
		chunks, err = s.stream(ctx, c, img, chunkRows(req.Height))
	} else {
		img, chunks, err = s.render(ctx, c, f)
		if err == nil {
			s.frames.Set(key, img)
		}
	}
	if err != nil {
		s.log.Debug("render aborted", "err", err)
		return
	}

	done := doneMessage{
		Type:      "done",
		Width:     req.Width,
		Height:    req.Height,
		Chunks:    chunks,
		Cached:    cached,
		ElapsedMS: time.Since(start).Milliseconds(),
	}
	if err := wsjson.Write(ctx, c, done); err != nil {
		return
	}
	s.log.Info(s.printer.Sprintf("streamed %d pixels in %d chunks", req.Width*req.Height, chunks),
		"kernel", f.Kernel.Name(), "cached", cached, "elapsed", time.Since(start).Round(time.Millisecond))
	c.Close(websocket.StatusNormalClosure, "")
}

// render computes f chunk by chunk, sending each chunk as soon as it is done,
// and returns the assembled frame.
func (s *server) render(ctx context.Context, c *websocket.Conn, f engine.Frame) (*image.RGBA, int, error) {
	e := engine.New(engine.WithWorkers(s.workers))
	defer e.Close()

	w, h := f.Config.Width, f.Config.Height
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	whole := engine.Region{Width: w, Height: h}
	step := chunkRows(h)

	chunks := 0
	for y := 0; ; y += step {
		if err := ctx.Err(); err != nil {
			return nil, chunks, err
		}
		part, ok := e.RenderRegion(f, whole, y, step)
		if !ok {
			break
		}
		draw.Draw(img, part.Rect, part, part.Rect.Min, draw.Src)
		if err := c.Write(ctx, websocket.MessageBinary, encodeChunk(part)); err != nil {
			return nil, chunks, err
		}
		chunks++
	}
	return img, chunks, nil
}

// stream sends a finished frame in bands of step rows.
func (s *server) stream(ctx context.Context, c *websocket.Conn, img *image.RGBA, step int) (int, error) {
	b := img.Bounds()
	chunks := 0
	for y := b.Min.Y; y < b.Max.Y; y += step {
		band := img.SubImage(image.Rect(b.Min.X, y, b.Max.X, min(y+step, b.Max.Y))).(*image.RGBA)
		if err := c.Write(ctx, websocket.MessageBinary, encodeChunk(band)); err != nil {
			return chunks, err
		}
		chunks++
	}
	return chunks, nil
}

func (s *server) fail(ctx context.Context, c *websocket.Conn, err error) {
	s.log.Debug("bad request", "err", err)
	_ = wsjson.Write(ctx, c, errorMessage{Type: "error", Error: err.Error()})
	c.Close(websocket.StatusPolicyViolation, "bad request")
}

type kernelInfo struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	CenterX     float64     `json:"center_x"`
	CenterY     float64     `json:"center_y"`
	Zoom        float64     `json:"zoom"`
	Params      []paramInfo `json:"params"`
}

type paramInfo struct {
	Name    string  `json:"name"`
	Default float64 `json:"default"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

func (s *server) handleKernels(w http.ResponseWriter, _ *http.Request) {
	kinds := kernel.Kinds()
	out := make([]kernelInfo, 0, len(kinds))
	for _, k := range kinds {
		info := k.Info()
		ki := kernelInfo{
			ID:          info.ID,
			Name:        info.Name,
			Category:    info.Category.String(),
			Description: info.Description,
			CenterX:     info.CenterX,
			CenterY:     info.CenterY,
			Zoom:        info.Zoom,
			Params:      []paramInfo{},
		}
		for _, p := range kernel.DefaultParameters(k) {
			ki.Params = append(ki.Params, paramInfo{Name: p.Name, Default: p.Value, Min: p.Min, Max: p.Max})
		}
		out = append(out, ki)
	}
	writeJSON(w, out)
}

func (s *server) handleStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.frames.Stats())
}

// chunkRows matches the chunk height of an engine with default options, so
// cached and fresh frames stream in the same bands.
func chunkRows(height int) int {
	n := engine.DefaultChunksPerFrame
	return max((height+n-1)/n, 1)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
