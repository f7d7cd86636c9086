package store

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/abhinavohri/video-call/internal/app"
)

// RoomCache remembers recently verified room tokens in Redis so repeat
// existence checks skip Postgres. Entries carry the same TTL as the rooms
// table sweep; a cached entry can outlive its row by at most one TTL,
// which only delays a "room not found" on an already-expired token.
type RoomCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRoomCache connects to redis and verifies connectivity
func NewRoomCache(ctx context.Context, cfg app.Config, ttl time.Duration) (*RoomCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &RoomCache{rdb: rdb, ttl: ttl}, nil
}

// Add marks id as a known-valid token.
func (c *RoomCache) Add(ctx context.Context, id string) error {
	return c.rdb.Set(ctx, key(id), 1, c.ttl).Err()
}

// Has reports whether id is cached as valid.
func (c *RoomCache) Has(ctx context.Context, id string) (bool, error) {
	n, err := c.rdb.Exists(ctx, key(id)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Close shuts down the redis connection
func (c *RoomCache) Close() { _ = c.rdb.Close() }

// key namespacing for room tokens
func key(id string) string { return "room:" + id }
