package sortedstorage

import (
	"context"
	"fmt"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const defaultCapacity = 100

var _ i.RecordStore = &RedisRecordStore{}

// RedisRecordStore keeps records boards as redis sorted sets, lowest score first.
type RedisRecordStore struct {
	client   *redis.Client
	locker   *redsync.Redsync
	capacity int64
}

// NewRedisRecordStore initializes a RedisRecordStore that keeps at most capacity entries per board.
func NewRedisRecordStore(client *redis.Client, capacity int) (*RedisRecordStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis record store needs a client")
	}
	if capacity <= 0 {
		capacity = defaultCapacity
	}

	store := &RedisRecordStore{
		client:   client,
		capacity: int64(capacity),
	}
	pool := goredis.NewPool(client)
	store.locker = redsync.New(pool)
	return store, nil
}

// Add stores a score for member, keeping the lower one if member already has a record,
// then trims the board to its capacity.
func (rrs *RedisRecordStore) Add(ctx context.Context, key string, score float64, member string) error {
	mutex := rrs.locker.NewMutex(key + ":record_lock")
	if err := mutex.LockContext(ctx); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	err := rrs.client.ZAddArgs(ctx, key, redis.ZAddArgs{
		LT:      true,
		Members: []redis.Z{{Score: score, Member: member}},
	}).Err()
	if err != nil {
		return err
	}

	return rrs.client.ZRemRangeByRank(ctx, key, rrs.capacity, -1).Err()
}

// Top returns up to n of the lowest scores on a board.
func (rrs *RedisRecordStore) Top(ctx context.Context, key string, n int64) ([]i.Record, error) {
	if n <= 0 {
		return []i.Record{}, nil
	}

	entries, err := rrs.client.ZRangeWithScores(ctx, key, 0, n-1).Result()
	if err != nil {
		return nil, err
	}

	records := make([]i.Record, 0, len(entries))
	for _, e := range entries {
		records = append(records, i.Record{Member: fmt.Sprint(e.Member), Score: e.Score})
	}
	return records, nil
}
