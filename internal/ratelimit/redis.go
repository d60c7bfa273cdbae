// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "around:ratelimit:"

// incrWindow increments the counter and starts the window on the first hit.
// It returns the counter and the remaining window in milliseconds.
var incrWindow = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
if ttl < 0 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
	ttl = tonumber(ARGV[1])
end
return {current, ttl}
`)

// RedisLimiter is a fixed-window counter shared by every instance that
// talks to the same Redis.
type RedisLimiter struct {
	client redis.Scripter
	window time.Duration
	max    int
}

func NewRedisLimiter(client redis.Scripter, window time.Duration, max int) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		window: window,
		max:    max,
	}
}

// Allow implements [Limiter].
func (l *RedisLimiter) Allow(ctx context.Context, key string) (Result, error) {
	values, err := incrWindow.Run(ctx, l.client, []string{redisKeyPrefix + key}, l.window.Milliseconds()).Int64Slice()
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}
	if len(values) != 2 {
		return Result{}, fmt.Errorf("%w: unexpected script reply %v", ErrBackendUnavailable, values)
	}

	return windowResult(int(values[0]), l.max, time.Duration(values[1])*time.Millisecond), nil
}

func windowResult(count, limit int, ttl time.Duration) Result {
	res := Result{
		Allowed:   count <= limit,
		Limit:     limit,
		Remaining: max(limit-count, 0),
		Reset:     ttl,
	}
	if !res.Allowed {
		res.RetryAfter = ttl
	}
	return res
}
