// Package cache provides a small generic LRU cache.
//
// The fractal server keeps recently rendered frames in a Cache keyed by the
// normalized render request, so repeated requests for the same view skip the
// kernel entirely.
//
//	frames := cache.New[string, *image.RGBA](32)
//	frames.Set(key, img)
//	img, ok := frames.Get(key)
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
