package ratelimit

import (
	"context"
	"time"

	"academy/internal/errors"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "rate_limit:"

// RedisLimiter is a fixed-window counter shared by every instance.
type RedisLimiter struct {
	client   redis.Cmdable
	scope    string
	requests int64
	window   time.Duration
}

// NewRedisLimiter allows requests per window for each key under scope.
func NewRedisLimiter(client redis.Cmdable, scope string, requests int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client:   client,
		scope:    scope,
		requests: int64(requests),
		window:   window,
	}
}

// Allow counts the hit and opens the window in one MULTI/EXEC. EXPIRE NX only
// sets a TTL on keys without one, so the window stays fixed and a key whose
// TTL was lost is repaired on its next hit.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := redisKeyPrefix + l.scope + ":" + key

	var count *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		count = pipe.Incr(ctx, redisKey)
		pipe.ExpireNX(ctx, redisKey, l.window)

		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "redis rate limit window")
	}

	return count.Val() <= l.requests, nil
}
