// Package fractal renders escape-time fractals.
//
// # Overview
//
// fractal is a Pure Go fractal renderer. It computes escape-time kernels
// (Mandelbrot, Julia, Burning Ship, Newton and friends) over a movable
// viewport of the complex plane, colors each escape record through a
// pluggable color pipeline, and assembles frames incrementally on a
// work-stealing worker pool.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/fractal/engine"
//	    "github.com/gogpu/fractal/export"
//	    "github.com/gogpu/fractal/kernel"
//	)
//
//	e := engine.New()
//	defer e.Close()
//
//	f := engine.NewFrame(kernel.Mandelbrot, engine.DefaultConfig())
//	e.Start(f)
//	for e.NextChunk() {
//	    // report e.Progress() between chunks
//	}
//	img := e.Finalize()
//	export.Save("mandelbrot.png", img)
//
// # Architecture
//
// The library is organized into:
//   - kernel: the escape-time kernels, their parameters and metadata
//   - viewport: the mapping between pixels and the complex plane
//   - palette, coloring: escape record to color
//   - engine: chunked full-frame passes, region passes and pan reuse
//   - export, history: PNG output, captions, undo/redo and bookmarks
//   - internal: worker pool, row coverage, LRU cache, logging
//
// # Coordinate System
//
// Pixel coordinates have their origin at the top-left with Y growing
// downward. Plane coordinates have the imaginary axis growing upward, so
// the viewport flips Y when mapping between the two.
//
// # Logging
//
// The library is silent by default. Call [SetLogger] to receive
// diagnostics from every sub-package.
package fractal

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
