// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"context"
	"time"

	"github.com/MKhiriev/around-api/internal/config"
	"github.com/MKhiriev/around-api/internal/logger"
	"github.com/redis/go-redis/v9"
)

const redisPingTimeout = 5 * time.Second

// New builds the limiter described by cfg. A zero Max disables limiting and
// yields a nil Limiter. The returned close function releases the Redis
// client, if any.
//
// When a Redis address is configured but Redis does not answer, the
// in-memory limiter is used instead.
func New(ctx context.Context, cfg config.RateLimit, log *logger.Logger) (Limiter, func() error) {
	noop := func() error { return nil }

	if cfg.Max == 0 || cfg.Window <= 0 {
		log.Warn().Str("func", "ratelimit.New").Msg("rate limiting disabled")
		return nil, noop
	}

	if cfg.RedisAddress == "" {
		return NewMemoryLimiter(cfg.Window, cfg.Max), noop
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Error().Err(err).Str("func", "ratelimit.New").Str("address", cfg.RedisAddress).
			Msg("failed to connect to Redis, falling back to in-memory rate limiting")
		_ = client.Close()
		return NewMemoryLimiter(cfg.Window, cfg.Max), noop
	}
	log.Info().Str("func", "ratelimit.New").Str("address", cfg.RedisAddress).Msg("rate limiting backed by Redis")

	return NewRedisLimiter(client, cfg.Window, cfg.Max), client.Close
}
