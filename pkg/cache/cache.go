// Package cache provides content-addressed caching of operation results.
//
// Results are keyed by [OpKey], which combines the operation name with a
// hash of both serialized operands, so identical computations are served
// from disk instead of being recomputed. The default implementation is
// [FileCache]; [NullCache] disables caching without changing call sites.
package cache

import (
	"context"
	"time"
)

// Cache stores and retrieves operation results by key.
type Cache interface {
	// Get retrieves a result. ok reports whether the key was present and
	// unexpired; a miss is not an error.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)

	// Set stores a result. A ttl of zero means the entry never expires;
	// any other ttl stamps time.Now().Add(ttl) as the expiry, so a
	// negative ttl stores an entry that is already expired.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a result. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// OpKey derives the cache key for a binary operation on two serialized
// operands. The operands are hashed with a separator byte in between so
// that shifting bytes across the boundary changes the key.
func OpKey(op string, a, b []byte) string {
	buf := make([]byte, 0, len(a)+len(b)+1)
	buf = append(buf, a...)
	buf = append(buf, 0x00)
	buf = append(buf, b...)
	return op + ":" + Hash(buf)
}
