// Package cache provides caching utilities for the MCP server.
package cache

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/usestring/minigrep/internal/textfile"
)

var errIsDir = errors.New("is a directory")

// fileEntry is a loaded body plus the stat fields it was loaded under.
type fileEntry struct {
	text    string
	size    int64
	modTime time.Time
}

// FileCache provides thread-safe LRU caching of file bodies keyed by path.
// A cached body is only served while the file's size and mtime are unchanged.
type FileCache struct {
	cache *lru.Cache[string, *fileEntry]
	group singleflight.Group
}

// NewFileCache creates a new LRU cache with the specified maximum number of items.
func NewFileCache(maxItems int) (*FileCache, error) {
	c, err := lru.New[string, *fileEntry](maxItems)
	if err != nil {
		return nil, err
	}
	return &FileCache{cache: c}, nil
}

// Load returns the text of the file at path, reading it only when the cached
// copy is missing or stale. Concurrent loads of the same path share one read.
// Errors are returned as *textfile.FileError and are never cached.
func (c *FileCache) Load(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", &textfile.FileError{Path: path, Op: "stat", Err: err}
	}
	if info.IsDir() {
		return "", &textfile.FileError{Path: path, Op: "read", Err: errIsDir}
	}

	if e, ok := c.cache.Get(path); ok && e.size == info.Size() && e.modTime.Equal(info.ModTime()) {
		slog.Debug("file cache hit", slog.String("path", path))
		return e.text, nil
	}

	v, err, _ := c.group.Do(path, func() (any, error) {
		text, err := textfile.Read(path)
		if err != nil {
			return nil, err
		}
		c.cache.Add(path, &fileEntry{text: text, size: info.Size(), modTime: info.ModTime()})
		slog.Debug("file cache fill",
			slog.String("path", path),
			slog.Int64("size", info.Size()),
		)
		return text, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Len returns the current number of items in the cache.
func (c *FileCache) Len() int {
	return c.cache.Len()
}

// Purge removes every cached body.
func (c *FileCache) Purge() {
	c.cache.Purge()
}
