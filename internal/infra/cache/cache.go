package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented TTL cache shared by the gateways. Misses and
// backend failures both report !ok; the caller recomputes.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}
