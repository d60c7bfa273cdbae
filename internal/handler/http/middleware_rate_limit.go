// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/around-api/internal/apperr"
	"github.com/MKhiriev/around-api/internal/logger"
	"github.com/MKhiriev/around-api/internal/ratelimit"
)

const (
	headerRateLimitLimit     = "RateLimit-Limit"
	headerRateLimitRemaining = "RateLimit-Remaining"
	headerRateLimitReset     = "RateLimit-Reset"
	headerRetryAfter         = "Retry-After"
)

// withRateLimit charges every request to the budget of its client address.
// Requests over the budget fail with 429 before any later stage runs.
//
// A limiter backend error lets the request through.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	if h.limiter == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res, err := h.limiter.Allow(r.Context(), clientKey(r))
		if err != nil {
			logger.FromRequest(r).Warn().Err(err).Msg("rate limiter failed, request let through")
			next.ServeHTTP(w, r)
			return
		}

		setRateLimitHeaders(w.Header(), res)

		if !res.Allowed {
			w.Header().Set(headerRetryAfter, seconds(res.RetryAfter))
			fail(r, apperr.New(http.StatusTooManyRequests, apperr.MsgTooManyRequests))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func setRateLimitHeaders(header http.Header, res ratelimit.Result) {
	header.Set(headerRateLimitLimit, strconv.Itoa(res.Limit))
	header.Set(headerRateLimitRemaining, strconv.Itoa(res.Remaining))
	header.Set(headerRateLimitReset, seconds(res.Reset))
}

// clientKey is the host part of RemoteAddr. With proxy trust enabled,
// RemoteAddr has already been rewritten from X-Forwarded-For / X-Real-IP.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// seconds renders d as whole seconds, rounded up.
func seconds(d time.Duration) string {
	if d <= 0 {
		return "0"
	}
	return strconv.Itoa(int(math.Ceil(d.Seconds())))
}
