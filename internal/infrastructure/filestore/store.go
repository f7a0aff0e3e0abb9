// Package filestore persists mutable user state as JSON files, one file per
// collection, under a configured directory.
//
// Writes to the same collection are serialized through a per-file queue and
// land via a temp-file rename, so a concurrent read observes either the
// previous or the new contents, never a torn file. Reads are deliberately
// not queued against writes: a read racing an in-flight write may return
// pre-write data. Callers must not assume read-after-write consistency
// until their write has returned. The queue serializes within one process
// only; multi-process deployments are out of scope.
package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Store is a directory of JSON collections.
type Store struct {
	dir string

	mu     sync.Mutex
	queues map[string]*sync.Mutex
}

// New creates the storage directory if needed and returns a store rooted
// there.
func New(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("filestore: dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &Store{dir: dir, queues: make(map[string]*sync.Mutex)}, nil
}

// Dir returns the storage root.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *Store) queue(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.queues[name]
	if !ok {
		q = &sync.Mutex{}
		s.queues[name] = q
	}
	return q
}

// Read decodes the named collection into v. A missing file is first
// created holding an empty list, so every collection reads as [] until the
// first write.
func (s *Store) Read(name string, v any) error {
	raw, err := s.ReadRaw(name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// ReadRaw returns the raw bytes of the named collection, initializing a
// missing file with an empty list.
func (s *Store) ReadRaw(name string) ([]byte, error) {
	path := s.path(name)
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err := s.WriteRaw(name, []byte("[]")); err != nil {
			return nil, err
		}
		return []byte("[]"), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return raw, nil
}

// Write replaces the named collection with v, pretty-printed. The write
// queues behind any in-flight write to the same collection; last writer
// wins.
func (s *Store) Write(name string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return s.WriteRaw(name, raw)
}

// WriteRaw writes pre-encoded bytes through the same queue as Write.
func (s *Store) WriteRaw(name string, raw []byte) error {
	q := s.queue(name)
	q.Lock()
	defer q.Unlock()

	path := s.path(name)
	tmp, err := os.CreateTemp(s.dir, name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("stage %s: %w", name, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("stage %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("stage %s: %w", name, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// Collections lists the collection names present on disk, sorted.
func (s *Store) Collections() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}
