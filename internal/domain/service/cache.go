package service

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// CacheService is a simple key/value cache with per-entry TTL.
type CacheService interface {
	// Get returns the cached value or ErrCacheMiss.
	Get(ctx context.Context, key string) (string, error)

	// Set stores a value with a time-to-live. A zero ttl means no expiry.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Ping checks connectivity to the backing store.
	Ping(ctx context.Context) error
}
