// Package cache holds the optional Redis read-through cache of follow id
// lists. Keys are "<user id>:followers" and "<user id>:following"; values
// reuse the comma-joined encoding of the persisted lists.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/1mdc/discourse-follow/internal/followlist"

	"github.com/redis/go-redis/v9"
)

// FollowCache caches follow id lists keyed by user id and list name.
// A nil *RedisFollowCache is a valid no-op cache.
type FollowCache interface {
	GetList(ctx context.Context, userID uint, name string) ([]uint, bool)
	SetList(ctx context.Context, userID uint, name string, ids []uint)
	Invalidate(ctx context.Context, userID uint, name string)
}

const listTTL = 5 * time.Minute

// RedisFollowCache implements FollowCache on a Redis client.
type RedisFollowCache struct {
	Client *redis.Client
}

func NewRedisFollowCache(addr string) *RedisFollowCache {
	return &RedisFollowCache{
		Client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func listKey(userID uint, name string) string {
	return fmt.Sprintf("%d:%s", userID, name)
}

func (c *RedisFollowCache) GetList(ctx context.Context, userID uint, name string) ([]uint, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.Client.Get(ctx, listKey(userID, name)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Error("error reading follow list from cache", "key", listKey(userID, name), "error", err)
		}
		return nil, false
	}
	return followlist.Decode(raw), true
}

func (c *RedisFollowCache) SetList(ctx context.Context, userID uint, name string, ids []uint) {
	if c == nil {
		return
	}
	if err := c.Client.Set(ctx, listKey(userID, name), followlist.Encode(ids), listTTL).Err(); err != nil {
		slog.Error("error writing follow list to cache", "key", listKey(userID, name), "error", err)
	}
}

func (c *RedisFollowCache) Invalidate(ctx context.Context, userID uint, name string) {
	if c == nil {
		return
	}
	if err := c.Client.Del(ctx, listKey(userID, name)).Err(); err != nil {
		slog.Error("error invalidating follow list cache", "key", listKey(userID, name), "error", err)
	}
}
