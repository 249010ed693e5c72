package sortedstorage

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore connects to the redis server named by REDIS_ADDR, skipping the test without one.
func newTestStore(t *testing.T, capacity int) *RedisRecordStore {
	t.Helper()
	addr, ok := os.LookupEnv("REDIS_ADDR")
	if !ok {
		t.Skip("REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("redis not reachable: %v", err)
	}

	store, err := NewRedisRecordStore(client, capacity)
	require.NoError(t, err)
	return store
}

func TestNewRedisRecordStore(t *testing.T) {
	_, err := NewRedisRecordStore(nil, 10)
	assert.Error(t, err)

	store, err := NewRedisRecordStore(redis.NewClient(&redis.Options{Addr: "localhost:0"}), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(defaultCapacity), store.capacity)

	top, err := store.Top(context.Background(), "unused", 0)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestRedisRecordStore(t *testing.T) {
	store := newTestStore(t, 2)
	ctx := context.Background()
	key := "test:records:" + uuid.NewString()
	t.Cleanup(func() { _ = store.client.Del(ctx, key).Err() })

	t.Run("keeps the best score per member", func(t *testing.T) {
		require.NoError(t, store.Add(ctx, key, 20, "alice"))
		require.NoError(t, store.Add(ctx, key, 30, "alice"))
		require.NoError(t, store.Add(ctx, key, 15, "alice"))

		top, err := store.Top(ctx, key, 5)
		require.NoError(t, err)
		require.Len(t, top, 1)
		assert.Equal(t, "alice", top[0].Member)
		assert.Equal(t, float64(15), top[0].Score)
	})

	t.Run("trims to capacity", func(t *testing.T) {
		require.NoError(t, store.Add(ctx, key, 10, "bob"))
		require.NoError(t, store.Add(ctx, key, 40, "carol"))

		top, err := store.Top(ctx, key, 5)
		require.NoError(t, err)
		require.Len(t, top, 2)
		assert.Equal(t, "bob", top[0].Member)
		assert.Equal(t, "alice", top[1].Member)
	})
}
