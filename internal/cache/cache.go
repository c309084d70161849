// internal/cache/cache.go
package cache

import (
	"context"
	"time"
)

// Cache is a key-value store with per-entry expiry. Implementations are safe
// for concurrent use.
type Cache interface {
	Set(ctx context.Context, key string, value interface{})
	Get(ctx context.Context, key string) (interface{}, bool)
	Delete(ctx context.Context, key string)
}

type entry struct {
	value     interface{}
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}
