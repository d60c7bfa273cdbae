// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the around-api server.
//
// Every request passes through a fixed chain of stages: trace ID, error
// handling, rate limiting, security headers, body parsing, CORS and access
// logging, followed by the public sign-in/sign-up routes, the protected
// users and cards routers and finally the not-found fallback.
//
// Stages and handlers never write error responses themselves. They record
// the failure on the per-request exchange with fail (or by returning an
// error from a handler wrapped with handle) and stop. The error handling
// stage, which wraps the whole chain, then classifies the error with
// [apperr.Classify] and writes exactly one {"message": ...} response.
package http
