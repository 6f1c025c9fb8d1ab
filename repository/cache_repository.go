package repository

import (
	"context"
	"time"
)

// CacheRepository stores serialized projection results by key.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}
