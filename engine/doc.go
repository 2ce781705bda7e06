// Package engine renders fractal frames incrementally on a CPU worker pool.
//
// # Render passes
//
// An Engine runs at most one pass at a time. A pass is started with Start
// (full frame) or StartRegions (patching strips of an existing image), and is
// advanced one chunk of rows per call so the caller keeps control between
// chunks:
//
//	eng := engine.New()
//	defer eng.Close()
//
//	eng.Start(frame)
//	for eng.NextChunk() {
//	    // report eng.Progress(), poll input, ...
//	}
//	img := eng.Finalize()
//
// Starting a new pass abandons the current one. Each pass owns its own
// buffer and snapshot of kernel, viewport and configuration, so changes made
// by the caller mid-pass never tear a frame.
//
// # Supersampling
//
// With Config.Supersample set, full-frame passes render at twice the width
// and height and Finalize applies a 2×2 box filter. Region rendering fuses
// the four samples per output pixel instead.
//
// # Pan reuse
//
// After a keyboard pan, StartPan shifts the previous image in place and
// re-renders only the exposed edge strips. A sub-pixel pan yields no regions
// and the caller falls back to a full pass.
package engine
