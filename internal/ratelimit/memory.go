// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"context"
	"sync"
	"time"
)

type counter struct {
	start time.Time
	count int
}

// MemoryLimiter is a fixed-window counter per key held in process memory.
// A key gets at most max requests in the window that starts with its first
// request; the counter restarts once the window has passed.
//
// Expired windows are evicted lazily, at most once per window.
type MemoryLimiter struct {
	mu        sync.Mutex
	counters  map[string]*counter
	lastSweep time.Time

	max    int
	window time.Duration

	now func() time.Time
}

func NewMemoryLimiter(window time.Duration, max int) *MemoryLimiter {
	return &MemoryLimiter{
		counters: make(map[string]*counter),
		max:      max,
		window:   window,
		now:      time.Now,
	}
}

// Allow implements [Limiter]. It never fails.
func (m *MemoryLimiter) Allow(_ context.Context, key string) (Result, error) {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.sweep(now)

	c, ok := m.counters[key]
	if !ok || now.Sub(c.start) >= m.window {
		c = &counter{start: now}
		m.counters[key] = c
	}
	c.count++

	return windowResult(c.count, m.max, c.start.Add(m.window).Sub(now)), nil
}

// Len returns the number of tracked keys.
func (m *MemoryLimiter) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.counters)
}

func (m *MemoryLimiter) sweep(now time.Time) {
	if now.Sub(m.lastSweep) < m.window {
		return
	}
	m.lastSweep = now

	for key, c := range m.counters {
		if now.Sub(c.start) >= m.window {
			delete(m.counters, key)
		}
	}
}
