// Package cache provides storage backends for raw VOSI response bodies.
//
// # Overview
//
// The library itself never needs a cache: every service client memoises its
// own documents for its lifetime. This package lets long-lived or repeated
// callers (the CLI in particular) reuse response bodies across clients and
// processes:
//
//   - [NullCache]: stores nothing; the library default
//   - [FileCache]: one JSON envelope per key under a directory
//   - [RedisCache]: shared cache in Redis for multi-host setups
//
// # Keys
//
// Keys are opaque strings. [HTTPKey] derives the key used for a response
// body from its request URL.
package cache

import (
	"context"
	"time"
)

// Cache stores byte payloads with an optional time-to-live.
//
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the payload for key. The boolean is false on a miss or
	// when the entry has expired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
