package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore is a PostgreSQL-backed cache for deployments that already run the
// database; entries survive restarts and are shared between instances.
type PGStore struct {
	pool *pgxpool.Pool
}

// ConnectPG establishes a connection pool and ensures the cache table exists.
func ConnectPG(ctx context.Context, databaseURL string) (*PGStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PGStore{pool: pool}
	if err := store.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the connection pool.
func (s *PGStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *PGStore) initSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS evidence_cache (
			source     TEXT NOT NULL,
			handle     TEXT NOT NULL,
			payload    JSONB NOT NULL,
			fetched_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (source, handle)
		)`)
	if err != nil {
		return fmt.Errorf("failed to create evidence_cache table: %w", err)
	}
	return nil
}

// Get returns the entry for the key if present and fresh, otherwise nil.
func (s *PGStore) Get(ctx context.Context, source, handle string, maxAge time.Duration) (*Entry, error) {
	var entry Entry
	var payload []byte
	err := s.pool.QueryRow(ctx,
		`SELECT payload, fetched_at FROM evidence_cache WHERE source = $1 AND handle = $2`,
		source, handle,
	).Scan(&payload, &entry.FetchedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache entry: %w", err)
	}

	entry.Payload = json.RawMessage(payload)
	if !entry.IsFresh(maxAge) {
		return nil, nil
	}
	return &entry, nil
}

// Put upserts the payload. The conditional update keeps a fresher row in place
// when two writers race.
func (s *PGStore) Put(ctx context.Context, source, handle string, payload any) error {
	raw, err := encodePayload(payload)
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO evidence_cache (source, handle, payload, fetched_at)
		 VALUES ($1, $2, $3, NOW())
		 ON CONFLICT (source, handle) DO UPDATE
		 SET payload = EXCLUDED.payload, fetched_at = EXCLUDED.fetched_at
		 WHERE evidence_cache.fetched_at <= EXCLUDED.fetched_at`,
		source, handle, []byte(raw),
	)
	if err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}
