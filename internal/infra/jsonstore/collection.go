// Package jsonstore persists each entity as a single JSON array document on
// disk, the way the site has always stored its data. A collection serializes
// every read-modify-write behind one mutex, which is what makes the booking
// conflict check and the append a single atomic step for callers.
package jsonstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"barber-booking/internal/pkg/errs"
)

type Collection[T any] struct {
	mu   sync.RWMutex
	path string
}

// NewCollection opens the collection at path, creating an empty document and
// any missing parent directories on first use.
func NewCollection[T any](path string) (*Collection[T], error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errs.Wrap(err, "failed to create data directory")
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return nil, errs.Wrap(err, "failed to initialize collection file")
		}
	} else if err != nil {
		return nil, errs.Wrap(err, "failed to stat collection file")
	}
	return &Collection[T]{path: path}, nil
}

// Snapshot returns the full collection in storage order. Reads may run
// concurrently with each other; the write lock plus rename-in-place below
// guarantees they never observe a torn file.
func (c *Collection[T]) Snapshot() ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.load()
}

// Mutate runs fn over the current items under the exclusive lock. fn returns
// the new contents and whether anything changed; the file is only rewritten
// when it did. Errors from fn pass through unchanged so callers keep their
// own sentinel semantics.
func (c *Collection[T]) Mutate(fn func(items []T) ([]T, bool, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load()
	if err != nil {
		return err
	}

	next, changed, err := fn(items)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	return c.persist(next)
}

func (c *Collection[T]) load() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read collection file")
	}
	if len(data) == 0 {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, errs.Wrap(err, "failed to decode collection file")
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// persist writes the whole document to a sibling temp file and renames it
// over the original, so a crash mid-write never leaves a half-written array.
func (c *Collection[T]) persist(items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return errs.Wrap(err, "failed to encode collection")
	}

	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errs.Wrap(err, "failed to write collection file")
	}
	if err := os.Rename(tmp, c.path); err != nil {
		return errs.Wrap(err, "failed to replace collection file")
	}
	return nil
}
