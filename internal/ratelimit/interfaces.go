// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/ratelimit_mock.go -package=mock

package ratelimit

import (
	"context"
	"time"
)

// Limiter decides whether one more request from key fits the budget.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

// Result describes the budget of a key after the current request.
type Result struct {
	Allowed bool

	// Limit is the number of requests allowed per window.
	Limit int
	// Remaining is the number of requests left in the current window.
	Remaining int
	// Reset is the time until the budget is fully restored.
	Reset time.Duration
	// RetryAfter is the time until the next request would be allowed.
	// It is zero for allowed requests.
	RetryAfter time.Duration
}
