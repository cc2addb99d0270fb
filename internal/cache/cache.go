// Package cache provides the durable evidence cache shared across audit runs.
// Entries are keyed by (source, handle) and stamped with their own fetch time;
// a reader decides freshness against its validity window. Any backend honoring
// get/put/expire semantics satisfies the contract.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// DefaultTTL is the default validity window for cached evidence.
const DefaultTTL = 24 * time.Hour

// Entry is one cached evidence payload.
type Entry struct {
	FetchedAt time.Time       `json:"fetched_at"`
	Payload   json.RawMessage `json:"payload"`
}

// IsFresh reports whether the entry is younger than maxAge.
func (e *Entry) IsFresh(maxAge time.Duration) bool {
	if e == nil {
		return false
	}
	return time.Since(e.FetchedAt) < maxAge
}

// Store is the durable cache contract. Get returns (nil, nil) on a miss or a
// stale entry. Put stamps the payload with the current time; implementations
// must never overwrite a fresher entry with a staler one.
type Store interface {
	Get(ctx context.Context, source, handle string, maxAge time.Duration) (*Entry, error)
	Put(ctx context.Context, source, handle string, payload any) error
}

// Decode unmarshals an entry payload into out. A nil entry is a no-op miss.
func Decode(entry *Entry, out any) error {
	if entry == nil {
		return nil
	}
	if err := json.Unmarshal(entry.Payload, out); err != nil {
		return fmt.Errorf("failed to decode cache payload: %w", err)
	}
	return nil
}

// encodePayload marshals a payload for storage.
func encodePayload(payload any) (json.RawMessage, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode cache payload: %w", err)
	}
	return raw, nil
}
