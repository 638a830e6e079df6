package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss returned by Get when the key is absent or expired
var ErrCacheMiss = errors.New("cache: key not found")

// Cache abstraction
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value interface{}, expire time.Duration) error
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) error
	GetTTL(ctx context.Context, key string) (time.Duration, error)
}
