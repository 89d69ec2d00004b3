package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NilClientDisablesCache(t *testing.T) {
	c := New(nil, "fundraiser", time.Minute)
	require.Nil(t, c)

	var dest map[string]any
	found, err := c.Get(context.Background(), "intern", &dest)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, c.Set(context.Background(), "intern", map[string]int{"a": 1}))
}

func TestJSONCache_KeyPrefix(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer client.Close()

	c := New(client, "fundraiser", time.Minute)
	assert.Equal(t, "fundraiser:leaderboard", c.key("leaderboard"))
}

func TestJSONCache_UnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	c := New(client, "fundraiser", time.Minute)

	var dest map[string]any
	found, err := c.Get(context.Background(), "intern", &dest)
	assert.Error(t, err)
	assert.False(t, found)
	assert.Error(t, c.Set(context.Background(), "intern", map[string]int{"a": 1}))
}

func TestConnect_InvalidURL(t *testing.T) {
	_, err := Connect(context.Background(), "not-a-redis-url")
	assert.ErrorContains(t, err, "invalid REDIS_URL")
}
