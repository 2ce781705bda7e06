// Package history records view states for undo/redo and bookmarks.
//
// A State is a plain, JSON-friendly snapshot of everything needed to
// reproduce a frame: kernel and its parameters, plane center, zoom and the
// color configuration. The output size is not part of a State; callers
// supply it when rebuilding an engine.Frame, so a bookmark made in a small
// window reopens correctly in a large one.
package history
