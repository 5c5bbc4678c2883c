// Package cache stores rendered artifacts between runs.
//
// The [Cache] interface is a plain byte store with TTLs. [FileCache] keeps
// entries under a directory, [NullCache] disables caching. A [Keyer] turns a
// document hash and render options into a stable key; [Bundle] packs the
// artifacts of one run into a single entry.
package cache

import (
	"context"
	"time"
)

// Cache is a key/value byte store.
type Cache interface {
	// Get returns the value for key. ok is false on a miss or an expired
	// entry; err is reserved for storage failures.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}

// TTLArtifact is how long rendered artifacts stay valid. Keys already
// change with content and options, so this only bounds disk use.
const TTLArtifact = 7 * 24 * time.Hour
