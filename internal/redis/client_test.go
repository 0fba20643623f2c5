package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-charsheet/internal/redis"
)

func TestNewClientRequiresEndpoint(t *testing.T) {
	_, err := redis.NewClient("", nil)
	assert.Error(t, err)

	_, err = redis.NewClientFromURL("", nil)
	assert.Error(t, err)

	_, err = redis.NewClientFromURL("http://not-redis", nil)
	assert.Error(t, err)
}

func TestNewClientFromURL(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := redis.NewClientFromURL("redis://"+mr.Addr()+"/0", &redis.Options{PoolSize: 2})
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	ctx := context.Background()
	require.NoError(t, client.Set(ctx, "character:ping", "pong", 0).Err())

	got, err := mr.Get("character:ping")
	require.NoError(t, err)
	assert.Equal(t, "pong", got)
}
