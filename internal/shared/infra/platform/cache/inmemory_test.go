package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInMemoryCache_SetGetDelete(t *testing.T) {
	c := NewInMemoryCache(time.Minute, time.Minute)
	defer c.Stop()
	ctx := context.Background()

	err := c.Set(ctx, "k", map[string]int{"a": 1}, 60)
	assert.NoError(t, err)

	var got map[string]int
	hit, err := c.Get(ctx, "k", &got)
	assert.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 1, got["a"])

	assert.NoError(t, c.Delete(ctx, "k"))
	hit, err = c.Get(ctx, "k", &got)
	assert.NoError(t, err)
	assert.False(t, hit)
}

func TestInMemoryCache_MissOnUnknownKey(t *testing.T) {
	c := NewInMemoryCache(time.Minute, time.Minute)
	defer c.Stop()

	var got string
	hit, err := c.Get(context.Background(), "nope", &got)
	assert.NoError(t, err)
	assert.False(t, hit)
}

func TestInMemoryCache_ExpiredEntryIsAMiss(t *testing.T) {
	c := NewInMemoryCache(time.Minute, time.Minute)
	defer c.Stop()
	ctx := context.Background()

	// TTL mínimo expresable en segundos.
	assert.NoError(t, c.Set(ctx, "k", "v", 1))

	var got string
	hit, _ := c.Get(ctx, "k", &got)
	assert.True(t, hit)

	time.Sleep(1100 * time.Millisecond)

	hit, err := c.Get(ctx, "k", &got)
	assert.NoError(t, err)
	assert.False(t, hit)
}
