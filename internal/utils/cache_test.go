package utils

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis starts an in-memory Redis and a client pointing at it
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

type item struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func TestListCache_GetSet(t *testing.T) {
	rdb, mr := setupTestRedis(t)
	c := NewListCache(rdb, time.Minute)
	ctx := context.Background()

	var got []item
	assert.False(t, c.Get(ctx, UsersCacheKey, &got))

	c.Set(ctx, UsersCacheKey, []item{{ID: 1, Name: "a"}})
	require.True(t, mr.Exists(UsersCacheKey))
	assert.Equal(t, time.Minute, mr.TTL(UsersCacheKey))
	assert.True(t, c.Get(ctx, UsersCacheKey, &got))
	assert.Equal(t, []item{{ID: 1, Name: "a"}}, got)
}

func TestListCache_CorruptEntryIsAMiss(t *testing.T) {
	rdb, mr := setupTestRedis(t)
	c := NewListCache(rdb, time.Minute)
	require.NoError(t, mr.Set(UsersCacheKey, "not json"))

	var got []item
	assert.False(t, c.Get(context.Background(), UsersCacheKey, &got))
}

func TestListCache_TTL(t *testing.T) {
	rdb, mr := setupTestRedis(t)
	c := NewListCache(rdb, 30*time.Second)
	ctx := context.Background()

	c.Set(ctx, UsersCacheKey, []item{{ID: 7}})
	var got []item
	assert.True(t, c.Get(ctx, UsersCacheKey, &got))

	mr.FastForward(31 * time.Second)
	assert.False(t, c.Get(ctx, UsersCacheKey, &got))
}

func TestListCache_Invalidate(t *testing.T) {
	rdb, _ := setupTestRedis(t)
	c := NewListCache(rdb, time.Minute)
	ctx := context.Background()

	c.Set(ctx, EmployerJobsCacheKey, []item{{ID: 1}})
	c.Invalidate(ctx, EmployerJobsCacheKey)

	var got []item
	assert.False(t, c.Get(ctx, EmployerJobsCacheKey, &got))
}

func TestListCache_NilIsNoop(t *testing.T) {
	c := NewListCache(nil, time.Minute)
	assert.Nil(t, c)

	ctx := context.Background()
	c.Set(ctx, UsersCacheKey, []item{{ID: 1}})
	c.Invalidate(ctx, UsersCacheKey)
	var got []item
	assert.False(t, c.Get(ctx, UsersCacheKey, &got))
}

func TestListCache_RedisDownIsAMiss(t *testing.T) {
	rdb, mr := setupTestRedis(t)
	c := NewListCache(rdb, time.Minute)
	mr.Close()

	var got []item
	assert.False(t, c.Get(context.Background(), FreelancerJobsCacheKey, &got))
}
