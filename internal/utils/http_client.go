// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

const retryMaxWait = time.Minute

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
//	client := utils.NewHTTPClient("http://localhost:3000", 10*time.Second, 0)
//	resp, err := client.R().Get("/healthz")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client for baseURL that expects JSON responses.
//
// With retries > 0, requests rejected with 429 Too Many Requests are
// repeated up to retries times, waiting for the Retry-After delay the
// server announced.
func NewHTTPClient(baseURL string, timeout time.Duration, retries int) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	if retries > 0 {
		client.
			SetRetryCount(retries).
			SetRetryMaxWaitTime(retryMaxWait).
			SetRetryAfter(retryAfter).
			AddRetryCondition(func(r *resty.Response, err error) bool {
				return err == nil && r.StatusCode() == http.StatusTooManyRequests
			})
	}

	return &HTTPClient{Client: client}
}

// retryAfter reads the Retry-After header in seconds. A missing or invalid
// header yields zero, which makes resty fall back to its own backoff.
func retryAfter(_ *resty.Client, r *resty.Response) (time.Duration, error) {
	secs, err := strconv.Atoi(r.Header().Get("Retry-After"))
	if err != nil || secs < 0 {
		return 0, nil
	}
	return time.Duration(secs) * time.Second, nil
}
