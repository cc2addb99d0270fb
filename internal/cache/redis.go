package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisKeyPrefix namespaces evidence cache entries in a shared Redis.
const redisKeyPrefix = "evcache:"

// RedisStore is a Redis-backed cache. Expiry is enforced twice: the key TTL
// reclaims storage and the fetch timestamp guards readers with a shorter
// validity window.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore wraps an existing Redis client.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

// ConnectRedis dials Redis from a URL (redis://...) and verifies the connection.
func ConnectRedis(ctx context.Context, redisURL string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return NewRedisStore(client, ttl), nil
}

func redisKey(source, handle string) string {
	return redisKeyPrefix + source + ":" + handle
}

// Get returns the entry for the key if present and fresh, otherwise nil.
func (s *RedisStore) Get(ctx context.Context, source, handle string, maxAge time.Duration) (*Entry, error) {
	data, err := s.client.Get(ctx, redisKey(source, handle)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache entry: %w", err)
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, nil
	}
	if !entry.IsFresh(maxAge) {
		return nil, nil
	}
	return &entry, nil
}

// Put stores the payload with the configured key TTL.
func (s *RedisStore) Put(ctx context.Context, source, handle string, payload any) error {
	raw, err := encodePayload(payload)
	if err != nil {
		return err
	}

	entry := Entry{FetchedAt: time.Now().UTC(), Payload: raw}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	if err := s.client.Set(ctx, redisKey(source, handle), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}
