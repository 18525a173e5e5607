package cache

import (
	"context"
	"time"
)

// Cache is a small string cache. A miss is ("", nil), not an error, so
// callers can fall through to the store without special-casing.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}
