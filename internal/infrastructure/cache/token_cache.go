package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-user-api/pkg/helpers"
)

type tokenEntry struct {
	UserID string `json:"user_id"`
}

// TokenCache maps auth token keys to user ids in Redis.
type TokenCache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewTokenCache(rdb redis.Cmdable, ttl time.Duration) *TokenCache {
	return &TokenCache{rdb: rdb, ttl: ttl}
}

func tokenKey(key string) string {
	return "auth:token:" + key
}

func (c *TokenCache) Get(ctx context.Context, key string) (string, bool, error) {
	var e tokenEntry
	ok, err := helpers.RedisGetJSON(ctx, c.rdb, tokenKey(key), &e)
	if err != nil || !ok {
		return "", false, err
	}
	return e.UserID, e.UserID != "", nil
}

func (c *TokenCache) Set(ctx context.Context, key, userID string) error {
	return helpers.RedisSetJSON(ctx, c.rdb, tokenKey(key), tokenEntry{UserID: userID}, c.ttl)
}
