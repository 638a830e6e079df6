package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInMemCache(t *testing.T) {
	ctx := context.Background()

	t.Run("Testcase #1: set then get within ttl", func(t *testing.T) {
		c := NewInMemCache(time.Minute)
		defer c.Close()

		assert.NoError(t, c.Set(ctx, "events_all", []byte("BEGIN:VCALENDAR"), 0))
		val, err := c.Get(ctx, "events_all")
		assert.NoError(t, err)
		assert.Equal(t, []byte("BEGIN:VCALENDAR"), val)

		exists, err := c.Exists(ctx, "events_all")
		assert.NoError(t, err)
		assert.True(t, exists)

		ttl, err := c.GetTTL(ctx, "events_all")
		assert.NoError(t, err)
		assert.True(t, ttl > 0)
	})

	t.Run("Testcase #2: expired entry is a miss", func(t *testing.T) {
		c := NewInMemCache(time.Minute)
		defer c.Close()

		assert.NoError(t, c.Set(ctx, "k", "v", time.Millisecond))
		time.Sleep(5 * time.Millisecond)

		_, err := c.Get(ctx, "k")
		assert.Equal(t, ErrCacheMiss, err)

		exists, err := c.Exists(ctx, "k")
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Testcase #3: delete and miss", func(t *testing.T) {
		c := NewInMemCache(time.Minute)
		defer c.Close()

		assert.NoError(t, c.Set(ctx, "k", "v", 0))
		assert.NoError(t, c.Delete(ctx, "k"))
		_, err := c.Get(ctx, "k")
		assert.Equal(t, ErrCacheMiss, err)
	})

	t.Run("Testcase #4: non byte value marshaled to json", func(t *testing.T) {
		c := NewInMemCache(time.Minute)
		defer c.Close()

		assert.NoError(t, c.Set(ctx, "k", map[string]string{"a": "b"}, 0))
		val, err := c.Get(ctx, "k")
		assert.NoError(t, err)
		assert.JSONEq(t, `{"a":"b"}`, string(val))
	})
}
