// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ratelimit counts requests per client key.
//
// Two [Limiter] implementations are provided: [MemoryLimiter] keeps a
// fixed-window counter per key in process memory, [RedisLimiter] keeps the
// same counter in Redis so that several server instances share one budget.
// [New] picks one based on [config.RateLimit].
package ratelimit
