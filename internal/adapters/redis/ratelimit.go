package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/goldengigs/goldengigs/internal/ports"
)

// RateLimiter is a fixed-window counter. The first attempt in a window
// creates the key with the window TTL; attempts beyond Limit are denied until
// the key expires.
type RateLimiter struct {
	client redis.UniversalClient
	prefix string
	limit  int
	window time.Duration
}

var _ ports.RateLimiter = (*RateLimiter)(nil)

// NewRateLimiter creates a limiter allowing limit attempts per window.
func NewRateLimiter(client redis.UniversalClient, prefix string, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{client: client, prefix: prefix, limit: limit, window: window}
}

// Allow reports whether another attempt is permitted for key.
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := l.prefix + key

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.ExpireNX(ctx, redisKey, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit check: %w", err)
	}
	return incr.Val() <= int64(l.limit), nil
}
