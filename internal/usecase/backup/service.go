// Package backup streams the user-state collections to and from a
// JSON-lines archive: one header record carrying format metadata, then one
// data record per collection.
package backup

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/eslsoft/atelier/internal/infrastructure/filestore"
)

const formatVersion = 1

var (
	errNoCollections   = errors.New("backup: no collections selected")
	errMissingHeader   = errors.New("backup: archive is missing its header record")
	errVersionMismatch = errors.New("backup: unsupported archive version")
)

// Service exports and imports file-store collections.
type Service struct {
	store *filestore.Store
}

// NewService binds the service to a file store.
func NewService(store *filestore.Store) *Service {
	return &Service{store: store}
}

type record struct {
	Type        string          `json:"type"`
	Version     int             `json:"version,omitempty"`
	ExportedAt  *time.Time      `json:"exported_at,omitempty"`
	Collections []string        `json:"collections,omitempty"`
	RowCounts   map[string]int  `json:"row_counts,omitempty"`
	Collection  string          `json:"collection,omitempty"`
	Payload     json.RawMessage `json:"payload,omitempty"`
}

// Export writes the selected collections (all on-disk collections when the
// list is empty) to w and returns per-collection row counts.
func (s *Service) Export(w io.Writer, collections []string) (map[string]int, error) {
	if len(collections) == 0 {
		names, err := s.store.Collections()
		if err != nil {
			return nil, err
		}
		collections = names
	}
	if len(collections) == 0 {
		return nil, errNoCollections
	}

	counts := make(map[string]int, len(collections))
	payloads := make(map[string]json.RawMessage, len(collections))
	for _, name := range collections {
		raw, err := s.store.ReadRaw(name)
		if err != nil {
			return nil, err
		}
		var rows []json.RawMessage
		if err := json.Unmarshal(raw, &rows); err != nil {
			return nil, fmt.Errorf("collection %s is not an array: %w", name, err)
		}
		counts[name] = len(rows)
		payloads[name] = raw
	}

	enc := json.NewEncoder(w)
	now := time.Now().UTC()
	header := record{
		Type:        "header",
		Version:     formatVersion,
		ExportedAt:  &now,
		Collections: collections,
		RowCounts:   counts,
	}
	if err := enc.Encode(header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for _, name := range collections {
		if err := enc.Encode(record{Type: "data", Collection: name, Payload: payloads[name]}); err != nil {
			return nil, fmt.Errorf("write collection %s: %w", name, err)
		}
	}
	return counts, nil
}

// Import replays an archive into the store, replacing each contained
// collection wholesale. When only is non-empty, other collections in the
// archive are skipped.
func (s *Service) Import(r io.Reader, only []string) (map[string]int, error) {
	wanted := make(map[string]bool, len(only))
	for _, name := range only {
		wanted[name] = true
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1<<20), 64<<20)

	sawHeader := false
	counts := make(map[string]int)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec record
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("malformed archive line: %w", err)
		}
		switch rec.Type {
		case "header":
			if rec.Version != formatVersion {
				return nil, fmt.Errorf("%w: got %d, want %d", errVersionMismatch, rec.Version, formatVersion)
			}
			sawHeader = true
		case "data":
			if !sawHeader {
				return nil, errMissingHeader
			}
			if len(wanted) > 0 && !wanted[rec.Collection] {
				continue
			}
			var rows []json.RawMessage
			if err := json.Unmarshal(rec.Payload, &rows); err != nil {
				return nil, fmt.Errorf("collection %s payload is not an array: %w", rec.Collection, err)
			}
			if err := s.store.WriteRaw(rec.Collection, rec.Payload); err != nil {
				return nil, err
			}
			counts[rec.Collection] = len(rows)
		default:
			return nil, fmt.Errorf("unknown record type %q", rec.Type)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read archive: %w", err)
	}
	if !sawHeader {
		return nil, errMissingHeader
	}
	return counts, nil
}
