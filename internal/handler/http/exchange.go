// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/around-api/internal/apperr"
	"github.com/MKhiriev/around-api/internal/logger"
	"github.com/MKhiriev/around-api/internal/utils"
)

type exchangeCtxKey struct{}

// exchange is the state of one request as it moves through the pipeline.
//
// A request is Succeeded when a handler wrote its own response, and
// Responded once the error handling stage wrote the classified failure.
// Both end states are final.
type exchange struct {
	w *responseWriter

	// err is the first failure recorded for the request.
	err error

	// responded is set once the error response has been written.
	responded bool
}

func withExchange(r *http.Request, ex *exchange) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), exchangeCtxKey{}, ex))
}

func exchangeFrom(r *http.Request) *exchange {
	ex, _ := r.Context().Value(exchangeCtxKey{}).(*exchange)
	return ex
}

// fail records err as the failure of the request and leaves the response
// to the error handling stage. Only the first failure is kept.
func fail(r *http.Request, err error) {
	if err == nil {
		return
	}

	ex := exchangeFrom(r)
	if ex == nil {
		logger.FromRequest(r).Error().Err(err).Msg("request failed outside of the error handling stage")
		return
	}

	if ex.err == nil {
		ex.err = err
	}
}

// started reports whether any part of the response was already written.
func (ex *exchange) started() bool {
	return ex.responded || ex.w.wroteHeader
}

// respond writes the classified failure as a JSON message. It writes at
// most once per request; later calls, and calls after a handler already
// started its own response, write nothing and return false.
func (ex *exchange) respond(classified apperr.Classified) bool {
	if ex.started() {
		return false
	}
	ex.responded = true

	// a MessageResponse always marshals; write errors mean the client is gone
	_, _ = utils.WriteMessage(ex.w, classified.Message, classified.Status)
	return true
}

// handlerFunc is a route handler that reports failures by returning them.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// handle adapts fn to [http.HandlerFunc], routing a returned error into the
// error chain.
func handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			fail(r, err)
		}
	}
}
