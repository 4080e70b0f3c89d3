// Package cache provides the read cache used by the public FAQ listing.
package cache

import (
	"context"
	"time"
)

// Cache is a key/value store with per-entry TTL. Implementations must be
// safe for concurrent use.
type Cache interface {
	// Get returns ErrCacheMiss when the key is absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Ping(ctx context.Context) error
	Close() error
}

type Error string

func (e Error) Error() string {
	return string(e)
}

const ErrCacheMiss Error = "cache miss"
