package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/fractal/internal/logging"
)

// Bookmark is a named, persisted State.
type Bookmark struct {
	Name    string    `json:"name"`
	Created time.Time `json:"created"`
	State   State     `json:"state"`
}

// SaveBookmarks writes bookmarks to w as indented JSON.
func SaveBookmarks(w io.Writer, bookmarks []Bookmark) error {
	if bookmarks == nil {
		bookmarks = []Bookmark{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(bookmarks); err != nil {
		return fmt.Errorf("history: encode bookmarks: %w", err)
	}
	return nil
}

// LoadBookmarks reads bookmarks written by SaveBookmarks.
func LoadBookmarks(r io.Reader) ([]Bookmark, error) {
	var bookmarks []Bookmark
	if err := json.NewDecoder(r).Decode(&bookmarks); err != nil {
		return nil, fmt.Errorf("history: decode bookmarks: %w", err)
	}
	return bookmarks, nil
}

// SaveBookmarksFile writes bookmarks to path, creating parent directories.
func SaveBookmarksFile(path string, bookmarks []Bookmark) error {
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("history: create directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("history: create file: %w", err)
	}
	if err := SaveBookmarks(f, bookmarks); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("history: close file: %w", err)
	}
	logging.Logger().Debug("history: bookmarks saved", "path", path, "count", len(bookmarks))
	return nil
}

// LoadBookmarksFile reads bookmarks from path. A missing file yields no
// bookmarks and no error.
func LoadBookmarksFile(path string) ([]Bookmark, error) {
	f, err := os.Open(filepath.Clean(path))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("history: open file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return LoadBookmarks(f)
}
