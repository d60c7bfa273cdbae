// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/around-api/internal/apperr"
	"github.com/MKhiriev/around-api/internal/logger"
)

// withErrorHandling wraps the rest of the pipeline. It attaches a fresh
// exchange to the request, and once the inner stages return (or panic) it
// logs the recorded failure, classifies it and writes the error response.
//
// Logging only observes the error; the response depends on [apperr.Classify]
// alone.
func (h *Handler) withErrorHandling(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{ResponseWriter: w}
		ex := &exchange{w: rw}
		r = withExchange(r, ex)

		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				err := panicError(rec)
				logger.FromRequest(r).Error().
					Err(err).
					Str("stack", string(debug.Stack())).
					Msg("panic recovered")
				fail(r, err)
			}

			h.finish(r, ex)
		}()

		next.ServeHTTP(rw, r)
	})
}

// finish is the terminal tail of the pipeline.
func (h *Handler) finish(r *http.Request, ex *exchange) {
	if ex.err == nil {
		return
	}

	log := logger.FromRequest(r)
	classified := apperr.Classify(ex.err)

	event := log.Warn()
	if classified.Status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(ex.err).
		Int("status", classified.Status).
		Str("method", r.Method).
		Str("uri", r.RequestURI).
		Msg("request failed")

	if !ex.respond(classified) {
		log.Warn().Err(ex.err).Msg("response already started, error response skipped")
	}
}

// panicError turns a recovered value into an error. Errors keep their
// identity so a panicking stage can still raise a classified error.
func panicError(rec any) error {
	if err, ok := rec.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", rec)
}
