package cache

import (
	"context"
	"time"
)

// ResponseCache stores raw model responses keyed by check kind and CNPJ, so
// repeated lookups of the same dealer do not pay for another round of
// queries. Implementations must be safe for concurrent use.
type ResponseCache interface {
	// Set stores a value with a TTL. A ttl of 0 means the key never expires.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Get retrieves a value by key. Returns ErrCacheKeyNotFound for missing
	// or expired keys.
	Get(ctx context.Context, key string) (string, error)

	// Delete removes a key.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying resources.
	Close() error
}

// NoOpCache disables caching: every Get misses, every Set is dropped.
type NoOpCache struct{}

func (NoOpCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return nil
}

func (NoOpCache) Get(ctx context.Context, key string) (string, error) {
	return "", ErrCacheKeyNotFound
}

func (NoOpCache) Delete(ctx context.Context, key string) error {
	return nil
}

func (NoOpCache) Close() error {
	return nil
}
