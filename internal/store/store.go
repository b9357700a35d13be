// Package store persists named collections as JSON array files on disk.
//
// The file format is the interop contract with the existing deployment: one
// top-level JSON array per collection, indented with two spaces. Every write
// replaces the whole file; every read decodes the whole file. Read-modify-write
// cycles are serialized per collection so concurrent writers cannot drop each
// other's updates.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrCorrupt reports that a collection file exists but does not contain a
// valid JSON array. It is surfaced rather than treated as empty so a damaged
// file is never silently overwritten.
var ErrCorrupt = errors.New("store: corrupt collection")

// Store is a handle to a data directory of collections.
type Store struct {
	dir string

	mu          sync.Mutex
	collections map[string]*Collection
}

// Open creates the data directory if needed and returns a Store.
func Open(dir string) (*Store, error) {
	if dir == "" {
		dir = "data"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir, collections: make(map[string]*Collection)}, nil
}

// Collection returns the collection with the given name, backed by
// <dir>/<name>.json. Repeated calls return the same instance so the write
// lock is shared by everyone touching the file.
func (s *Store) Collection(name string) *Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.collections[name]
	if !ok {
		c = &Collection{path: filepath.Join(s.dir, name+".json")}
		s.collections[name] = c
	}
	return c
}

// Collection is one JSON array file.
type Collection struct {
	path string
	mu   sync.RWMutex
}

// Ensure creates the file with an empty array if it does not exist yet.
// It is idempotent and never touches an existing file.
func (c *Collection) Ensure() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := os.Stat(c.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return writeFileAtomic(c.path, []byte("[]"))
}

// Load reads and decodes the whole collection. A missing file reads as empty.
func Load[T any](c *Collection) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return load[T](c)
}

// Save replaces the whole collection.
func Save[T any](c *Collection, items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return save(c, items)
}

// Append loads the collection, appends item, and writes it back, holding the
// write lock for the whole cycle.
func Append[T any](c *Collection, item T) error {
	return Update(c, func(items []T) ([]T, error) {
		return append(items, item), nil
	})
}

// Update runs fn over the decoded collection under the write lock and saves
// whatever fn returns. If fn errors the file is left untouched.
func Update[T any](c *Collection, fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := load[T](c)
	if err != nil {
		return err
	}
	items, err = fn(items)
	if err != nil {
		return err
	}
	return save(c, items)
}

func load[T any](c *Collection) ([]T, error) {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []T{}, nil
		}
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, c.path, err)
	}
	if items == nil {
		// "null" decodes without error; the contract is an array.
		return nil, fmt.Errorf("%w: %s: not a JSON array", ErrCorrupt, c.path)
	}
	return items, nil
}

func save[T any](c *Collection, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(c.path, raw)
}

// writeFileAtomic writes to a temp file in the same directory, syncs it, and
// renames it over the target, so readers never observe a partial array and
// the call does not return before the data is durable.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-")
	if err != nil {
		return err
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(name)
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(name)
		return err
	}
	return os.Rename(name, path)
}
