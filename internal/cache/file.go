package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileStore persists cache entries as one JSON file per (source, handle) key
// under a cache directory. This is the default backend.
type FileStore struct {
	dir string
}

// NewFileStore creates the cache directory if needed and returns a store.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("cache directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// path builds the file path for a key, sanitizing handle characters that are
// not filesystem safe.
func (s *FileStore) path(source, handle string) string {
	sanitize := func(v string) string {
		return strings.Map(func(r rune) rune {
			switch {
			case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
				return r
			case r == '-' || r == '_' || r == '.':
				return r
			default:
				return '_'
			}
		}, v)
	}
	return filepath.Join(s.dir, fmt.Sprintf("%s_%s.json", sanitize(source), sanitize(handle)))
}

// Get returns the entry for the key if it exists and is fresh, otherwise nil.
func (s *FileStore) Get(_ context.Context, source, handle string, maxAge time.Duration) (*Entry, error) {
	data, err := os.ReadFile(s.path(source, handle))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cache entry: %w", err)
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		// A corrupt entry is treated as a miss; the next Put repairs it.
		return nil, nil
	}

	if !entry.IsFresh(maxAge) {
		return nil, nil
	}
	return &entry, nil
}

// Put writes the payload stamped with the current time. An existing fresher
// entry is kept.
func (s *FileStore) Put(ctx context.Context, source, handle string, payload any) error {
	raw, err := encodePayload(payload)
	if err != nil {
		return err
	}

	entry := Entry{FetchedAt: time.Now().UTC(), Payload: raw}

	if existing, err := s.Get(ctx, source, handle, DefaultTTL); err == nil && existing != nil {
		if existing.FetchedAt.After(entry.FetchedAt) {
			return nil
		}
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}
	if err := os.WriteFile(s.path(source, handle), data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}
