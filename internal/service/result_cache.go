package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"askhub/internal/scoring"
)

// ResultCache keeps the latest level result per subject so repeated reads
// skip the recompute. Entries are invalidated whenever a reviewer rating
// lands.
type ResultCache interface {
	Get(ctx context.Context, username string) (scoring.LevelResult, bool)
	Set(ctx context.Context, username string, res scoring.LevelResult)
	Invalidate(ctx context.Context, username string)
}

type memoryResultCache struct {
	mu    sync.RWMutex
	items map[string]scoring.LevelResult
}

func NewMemoryResultCache() ResultCache {
	return &memoryResultCache{items: make(map[string]scoring.LevelResult)}
}

func (c *memoryResultCache) Get(_ context.Context, username string) (scoring.LevelResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	res, ok := c.items[username]
	return res, ok
}

func (c *memoryResultCache) Set(_ context.Context, username string, res scoring.LevelResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[username] = res
}

func (c *memoryResultCache) Invalidate(_ context.Context, username string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, username)
}

type redisResultCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisResultCache returns a cache backed by Redis, or nil when no
// client is configured. Cache misses are silent: a Redis failure degrades
// to a recompute, never to an error.
func NewRedisResultCache(client *redis.Client, ttl time.Duration) ResultCache {
	if client == nil {
		return nil
	}
	return &redisResultCache{client: client, prefix: "assess:result:", ttl: ttl}
}

func (c *redisResultCache) Get(ctx context.Context, username string) (scoring.LevelResult, bool) {
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	raw, err := c.client.Get(ctx, c.prefix+username).Bytes()
	if err != nil {
		return scoring.LevelResult{}, false
	}
	var res scoring.LevelResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return scoring.LevelResult{}, false
	}
	return res, true
}

func (c *redisResultCache) Set(ctx context.Context, username string, res scoring.LevelResult) {
	raw, err := json.Marshal(res)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	c.client.Set(ctx, c.prefix+username, raw, c.ttl)
}

func (c *redisResultCache) Invalidate(ctx context.Context, username string) {
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	c.client.Del(ctx, c.prefix+username)
}
