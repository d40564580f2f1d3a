// Package cache keeps generated mazes in Redis, keyed by generation key.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-mazegen/domain"
	"github.com/beka-birhanu/vinom-mazegen/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix  = "maze:"
	lockSuffix = ":generate_lock"

	lockExpiry = 30 * time.Second
	lockTries  = 64
)

// RedisMazeCache stores maze records as JSON with a TTL and serializes
// generation of the same key across API instances.
type RedisMazeCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

var _ i.MazeCache = &RedisMazeCache{}

// NewRedisMazeCache initializes a RedisMazeCache with the provided Redis client and TTL.
func NewRedisMazeCache(client *redis.Client, ttlSeconds int) *RedisMazeCache {
	return &RedisMazeCache{
		client: client,
		locker: redsync.New(goredis.NewPool(client)),
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
}

// Get returns the cached record under key.
func (c *RedisMazeCache) Get(ctx context.Context, key string) (*dmn.Maze, error) {
	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, dmn.ErrCacheMiss
		}
		return nil, err
	}

	var m dmn.Maze
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decoding cached maze %q: %w", key, err)
	}
	return &m, nil
}

// Set caches m under key for the configured TTL.
func (c *RedisMazeCache) Set(ctx context.Context, key string, m *dmn.Maze) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, keyPrefix+key, raw, c.ttl).Err()
}

// Lock blocks until the generation lock for key is held or ctx is done.
func (c *RedisMazeCache) Lock(ctx context.Context, key string) (func(), error) {
	mutex := c.locker.NewMutex(keyPrefix+key+lockSuffix,
		redsync.WithExpiry(lockExpiry),
		redsync.WithTries(lockTries),
	)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("locking %q: %w", key, err)
	}

	return func() {
		_, _ = mutex.Unlock()
	}, nil
}
