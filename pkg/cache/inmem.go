package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

type inMemEntry struct {
	value     []byte
	expiresAt time.Time
}

// InMemCache process-local ttl cache, used when no redis host is configured.
// Safe for concurrent use, last write wins.
type InMemCache struct {
	mu         sync.RWMutex
	entries    map[string]inMemEntry
	defaultTTL time.Duration
	stop       chan struct{}
	stopOnce   sync.Once
}

// NewInMemCache constructor, starts a background sweeper until Close is called
func NewInMemCache(defaultTTL time.Duration) *InMemCache {
	c := &InMemCache{
		entries:    make(map[string]inMemEntry),
		defaultTTL: defaultTTL,
		stop:       make(chan struct{}),
	}
	go c.sweep()
	return c
}

// Get value by key, expired entries count as a miss
func (c *InMemCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return nil, ErrCacheMiss
	}
	return entry.value, nil
}

// Set value with expiration, expire <= 0 falls back to the default ttl
func (c *InMemCache) Set(ctx context.Context, key string, value interface{}, expire time.Duration) error {
	if expire <= 0 {
		expire = c.defaultTTL
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		b, err := json.Marshal(value)
		if err != nil {
			return err
		}
		data = b
	}

	c.mu.Lock()
	c.entries[key] = inMemEntry{value: data, expiresAt: time.Now().Add(expire)}
	c.mu.Unlock()
	return nil
}

// Exists check key
func (c *InMemCache) Exists(ctx context.Context, key string) (bool, error) {
	_, err := c.Get(ctx, key)
	if err == ErrCacheMiss {
		return false, nil
	}
	return err == nil, err
}

// Delete key
func (c *InMemCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

// GetTTL remaining lifetime of key
func (c *InMemCache) GetTTL(ctx context.Context, key string) (time.Duration, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return 0, ErrCacheMiss
	}
	ttl := time.Until(entry.expiresAt)
	if ttl < 0 {
		return 0, ErrCacheMiss
	}
	return ttl, nil
}

// Close stop the sweeper goroutine
func (c *InMemCache) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *InMemCache) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-c.stop:
			return
		case now := <-ticker.C:
			c.mu.Lock()
			for key, entry := range c.entries {
				if now.After(entry.expiresAt) {
					delete(c.entries, key)
				}
			}
			c.mu.Unlock()
		}
	}
}
