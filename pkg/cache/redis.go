package cache

import (
	"context"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/communitycal/events-api/pkg/tracer"
)

// RedisCache cache implementation backed by redis pools
type RedisCache struct {
	read, write *redis.Pool
	defaultTTL  time.Duration
}

// NewRedisCache constructor
func NewRedisCache(read, write *redis.Pool, defaultTTL time.Duration) *RedisCache {
	return &RedisCache{read: read, write: write, defaultTTL: defaultTTL}
}

// Get value by key
func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	trace := tracer.StartTrace(ctx, "redis:get")
	defer trace.Finish()
	trace.SetTag("db.key", key)

	cl := r.read.Get()
	defer cl.Close()

	data, err := redis.Bytes(cl.Do("GET", key))
	if err == redis.ErrNil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		trace.SetError(err)
		return nil, err
	}
	return data, nil
}

// Set value with expiration, expire <= 0 falls back to the default ttl
func (r *RedisCache) Set(ctx context.Context, key string, value interface{}, expire time.Duration) (err error) {
	trace := tracer.StartTrace(ctx, "redis:set")
	defer func() {
		if err != nil {
			trace.SetError(err)
		}
		trace.Finish()
	}()
	trace.SetTag("db.key", key)

	cl := r.write.Get()
	defer cl.Close()

	if _, err = cl.Do("SET", key, value); err != nil {
		return err
	}
	if expire <= 0 {
		expire = r.defaultTTL
	}
	_, err = cl.Do("EXPIRE", key, int(expire.Seconds()))
	return err
}

// Exists check key
func (r *RedisCache) Exists(ctx context.Context, key string) (bool, error) {
	trace := tracer.StartTrace(ctx, "redis:exists")
	defer trace.Finish()
	trace.SetTag("db.key", key)

	cl := r.read.Get()
	defer cl.Close()

	return redis.Bool(cl.Do("EXISTS", key))
}

// Delete key
func (r *RedisCache) Delete(ctx context.Context, key string) error {
	trace := tracer.StartTrace(ctx, "redis:delete")
	defer trace.Finish()
	trace.SetTag("db.key", key)

	cl := r.write.Get()
	defer cl.Close()

	_, err := cl.Do("DEL", key)
	return err
}

// GetTTL remaining lifetime of key
func (r *RedisCache) GetTTL(ctx context.Context, key string) (time.Duration, error) {
	trace := tracer.StartTrace(ctx, "redis:get_ttl")
	defer trace.Finish()
	trace.SetTag("db.key", key)

	cl := r.read.Get()
	defer cl.Close()

	ttl, err := redis.Int64(cl.Do("TTL", key))
	if err != nil {
		return 0, err
	}
	return time.Duration(ttl) * time.Second, nil
}
