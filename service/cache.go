package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// ICacheClient defines the contract for a cache client. The
// abstraction decouples the services from a concrete Redis
// implementation so tests can run without a cache (nil client).
type ICacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

const accountCacheTTL = 10 * time.Minute

func accountCacheKey(accountNumber string) string {
	return "account:" + accountNumber
}
