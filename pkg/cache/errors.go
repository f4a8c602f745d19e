package cache

import "errors"

var (
	// ErrCacheKeyNotFound is returned when a key is missing or expired.
	ErrCacheKeyNotFound = errors.New("cache key not found")

	// ErrCacheOperationFailed is returned when a cache operation fails.
	ErrCacheOperationFailed = errors.New("cache operation failed")
)
