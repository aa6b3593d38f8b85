// Package cache stores rendered artifacts between runs.
//
// Rendering through Graphviz is the only slow step of a draw, and its input
// is fully described by the DOT source and the output format. The CLI keys
// artifacts by [ArtifactKey] in a [FileCache] under the user's cache
// directory; --no-cache switches to a [NullCache].
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the value for key and whether it was found.
	// Expired or unreadable entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// ArtifactTTL is how long rendered artifacts are kept.
const ArtifactTTL = 30 * 24 * time.Hour

// ArtifactKey builds the cache key for DOT source rendered in format.
func ArtifactKey(dotSource, format string) string {
	return hashKey("artifact", format, dotSource)
}
