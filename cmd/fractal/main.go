// Command fractal renders one fractal frame to an image file.
//
//	fractal -kernel julia -param c_real=0.285 -param c_imag=0.01 -zoom 3 -caption
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/coloring"
	"github.com/gogpu/fractal/engine"
	"github.com/gogpu/fractal/export"
	"github.com/gogpu/fractal/kernel"
	"github.com/gogpu/fractal/palette"
)

// params collects repeated -param name=value flags.
type params map[string]float64

func (p params) String() string {
	parts := make([]string, 0, len(p))
	for k, v := range p {
		parts = append(parts, k+"="+strconv.FormatFloat(v, 'g', -1, 64))
	}
	return strings.Join(parts, ",")
}

func (p params) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return fmt.Errorf("want name=value, got %q", s)
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parameter %s: %w", name, err)
	}
	p[name] = v
	return nil
}

type options struct {
	kernel      string
	centerX     float64
	centerY     float64
	zoom        float64
	width       int
	height      int
	iterations  uint
	palette     string
	offset      float64
	processor   string
	supersample bool
	scale       int
	caption     bool
	thumbnail   int
	output      string
	workers     int
	verbose     bool
	params      params
}

func main() {
	opts := options{params: params{}}
	flag.StringVar(&opts.kernel, "kernel", "mandelbrot", "kernel id (see -list)")
	flag.Float64Var(&opts.centerX, "x", 0, "plane center, real part (default: kernel default)")
	flag.Float64Var(&opts.centerY, "y", 0, "plane center, imaginary part (default: kernel default)")
	flag.Float64Var(&opts.zoom, "zoom", 0, "zoom factor (default: kernel default)")
	flag.IntVar(&opts.width, "width", 800, "image width")
	flag.IntVar(&opts.height, "height", 600, "image height")
	flag.UintVar(&opts.iterations, "iterations", 200, "iteration budget per sample")
	flag.StringVar(&opts.palette, "palette", "classic", "palette: classic, fire, ice, grayscale, psychedelic")
	flag.Float64Var(&opts.offset, "offset", 0, "palette offset for hue-cycling palettes")
	flag.StringVar(&opts.processor, "color", "palette", "color processor: palette, smooth, trap-real, trap-imag, trap-origin")
	flag.BoolVar(&opts.supersample, "ss", false, "2x2 supersampling")
	flag.IntVar(&opts.scale, "scale", 1, "export scale factor")
	flag.BoolVar(&opts.caption, "caption", false, "draw a parameter caption")
	flag.IntVar(&opts.thumbnail, "thumb", 0, "also write a thumbnail no larger than N×N")
	flag.StringVar(&opts.output, "output", "", "output file (default: images/<kernel>_<palette>_<w>x<h>.png)")
	flag.IntVar(&opts.workers, "workers", 0, "worker goroutines (default: GOMAXPROCS)")
	flag.BoolVar(&opts.verbose, "v", false, "debug logging")
	flag.Var(opts.params, "param", "kernel parameter name=value (repeatable)")
	list := flag.Bool("list", false, "list kernels and exit")
	flag.Parse()

	if *list {
		listKernels()
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts); err != nil {
		log.Fatalf("fractal: %v", err)
	}
}

func listKernels() {
	for _, k := range kernel.Kinds() {
		info := k.Info()
		fmt.Printf("%-16s %-14s %s\n", info.ID, info.Category, info.Description)
		for _, p := range kernel.DefaultParameters(k) {
			fmt.Printf("  %-14s %g [%g, %g]\n", p.Name, p.Value, p.Min, p.Max)
		}
	}
}

func run(ctx context.Context, opts options) error {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	fractal.SetLogger(logger)

	f, err := buildFrame(opts)
	if err != nil {
		return err
	}

	e := engine.New(engine.WithWorkers(opts.workers))
	defer e.Close()

	start := time.Now()
	var img *image.RGBA
	if opts.scale > 1 {
		img, err = export.HighRes(ctx, e, f, opts.scale)
		if err != nil {
			return err
		}
	} else {
		img, err = progressive(ctx, e, f, logger)
		if err != nil {
			return err
		}
	}

	b := img.Bounds()
	p := message.NewPrinter(language.English)
	logger.Info(p.Sprintf("rendered %d pixels in %v", b.Dx()*b.Dy(), time.Since(start).Round(time.Millisecond)),
		"kernel", f.Kernel.Name(), "workers", e.Workers())

	if opts.caption {
		size := export.DefaultCaptionSize * float64(max(opts.scale, 1))
		if err := export.Caption(img, export.CaptionText(f), size); err != nil {
			return err
		}
	}

	out := opts.output
	if out == "" {
		out = export.Filename(f.Kernel.Kind(), f.Config.Palette, b.Dx(), b.Dy())
	}
	if err := export.Save(out, img); err != nil {
		return err
	}
	logger.Info("saved", "path", out)

	if opts.thumbnail > 0 {
		thumb, err := export.Thumbnail(img, opts.thumbnail, opts.thumbnail)
		if err != nil {
			return err
		}
		ext := filepath.Ext(out)
		path := strings.TrimSuffix(out, ext) + "_thumb" + ext
		if err := export.Save(path, thumb); err != nil {
			return err
		}
		logger.Info("saved thumbnail", "path", path)
	}
	return nil
}

// progressive drives a full pass chunk by chunk, logging progress every
// tenth of the frame.
func progressive(ctx context.Context, e *engine.Engine, f engine.Frame, logger *slog.Logger) (*image.RGBA, error) {
	e.Start(f)
	next := 0.1
	for e.NextChunk() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if pr := e.Progress(); pr.Fraction() >= next {
			logger.Debug("progress", "done", pr.Done, "total", pr.Total, "elapsed", pr.Elapsed.Round(time.Millisecond))
			next += 0.1
		}
	}
	img := e.Finalize()
	if img == nil {
		return nil, errors.New("render pass was abandoned")
	}
	return img, nil
}

func buildFrame(opts options) (engine.Frame, error) {
	kind, err := kernel.Parse(opts.kernel)
	if err != nil {
		return engine.Frame{}, err
	}
	pal, err := palette.Parse(opts.palette)
	if err != nil {
		return engine.Frame{}, err
	}
	proc, err := coloring.Parse(opts.processor)
	if err != nil {
		return engine.Frame{}, err
	}
	if opts.width <= 0 || opts.height <= 0 {
		return engine.Frame{}, fmt.Errorf("invalid size %dx%d", opts.width, opts.height)
	}
	if opts.iterations == 0 || opts.iterations > 1<<24 {
		return engine.Frame{}, fmt.Errorf("invalid iteration budget %d", opts.iterations)
	}

	cfg := engine.Config{
		Width:         opts.width,
		Height:        opts.height,
		Supersample:   opts.supersample,
		MaxIterations: uint32(opts.iterations),
		Palette:       pal,
		PaletteOffset: float32(opts.offset),
		Processor:     proc,
	}
	f := engine.NewFrame(kind, cfg)

	set := make(map[string]bool)
	flag.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	c := f.View.Center
	if set["x"] {
		c = complex(opts.centerX, imag(c))
	}
	if set["y"] {
		c = complex(real(c), opts.centerY)
	}
	f.View.Center = c
	if set["zoom"] {
		f.View.SetZoom(opts.zoom)
	}
	for name, v := range opts.params {
		if _, ok := f.Kernel.Parameter(name); !ok {
			return engine.Frame{}, fmt.Errorf("kernel %s has no parameter %q", kind.ID(), name)
		}
		f.Kernel.SetParameter(name, v)
	}
	return f, nil
}
