// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/around-api/internal/apperr"
	"github.com/MKhiriev/around-api/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

func serveWithErrorHandling(next http.HandlerFunc) *httptest.ResponseRecorder {
	h := newTestHandler()
	rr := httptest.NewRecorder()
	h.withErrorHandling(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/test", nil))
	return rr
}

func TestWithErrorHandling_ClassifiedErrors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"validation", apperr.Validation(`"email" is required`), http.StatusBadRequest, `"email" is required`},
		{"authentication", apperr.Authentication(apperr.MsgAuthorizationRequired), http.StatusUnauthorized, apperr.MsgAuthorizationRequired},
		{"authorization", apperr.Authorization(""), http.StatusForbidden, apperr.MsgForbidden},
		{"not found", apperr.NotFound(""), http.StatusNotFound, apperr.MsgNotFound},
		{"conflict", apperr.Conflict("User with this email already exists"), http.StatusConflict, "User with this email already exists"},
		{"wrapped", fmt.Errorf("lookup: %w", apperr.NotFound("Card not found")), http.StatusNotFound, "Card not found"},
		{"unclassified", errors.New("db down"), http.StatusInternalServerError, "something went wrong with the server: db down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serveWithErrorHandling(func(w http.ResponseWriter, r *http.Request) {
				fail(r, tt.err)
			})

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, messageOf(t, rr))
		})
	}
}

func TestWithErrorHandling_SuccessIsUntouched(t *testing.T) {
	rr := serveWithErrorHandling(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"_id":"1"}`))
	})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"_id":"1"}`, rr.Body.String())
}

func TestWithErrorHandling_FirstFailureWins(t *testing.T) {
	rr := serveWithErrorHandling(func(w http.ResponseWriter, r *http.Request) {
		fail(r, apperr.Authentication(apperr.MsgInvalidToken))
		fail(r, errors.New("later"))
		fail(r, nil)
	})

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, apperr.MsgInvalidToken, messageOf(t, rr))
}

func TestWithErrorHandling_HandlerAlreadyWrote(t *testing.T) {
	rr := serveWithErrorHandling(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("partial"))
		fail(r, errors.New("too late"))
	})

	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Equal(t, "partial", rr.Body.String())
}

func TestWithErrorHandling_PanicBecomes500(t *testing.T) {
	rr := serveWithErrorHandling(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "something went wrong with the server: panic: boom", messageOf(t, rr))
}

func TestWithErrorHandling_PanicWithClassifiedError(t *testing.T) {
	rr := serveWithErrorHandling(func(w http.ResponseWriter, r *http.Request) {
		panic(apperr.Authorization("not yours"))
	})

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "not yours", messageOf(t, rr))
}

func TestWithErrorHandling_PanicAfterFailureKeepsFirstError(t *testing.T) {
	rr := serveWithErrorHandling(func(w http.ResponseWriter, r *http.Request) {
		fail(r, apperr.NotFound(""))
		panic("boom")
	})

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestWithErrorHandling_AbortHandlerIsRepanicked(t *testing.T) {
	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		serveWithErrorHandling(func(w http.ResponseWriter, r *http.Request) {
			panic(http.ErrAbortHandler)
		})
	})
}

func TestExchange_RespondWritesOnce(t *testing.T) {
	rr := httptest.NewRecorder()
	ex := &exchange{w: &responseWriter{ResponseWriter: rr}}

	first := ex.respond(apperr.Classify(apperr.NotFound("")))
	second := ex.respond(apperr.Classify(errors.New("again")))

	assert.True(t, first)
	assert.False(t, second)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"Requested resource not found"}`, rr.Body.String())
}

func TestExchange_RespondAfterHandlerWrite(t *testing.T) {
	rr := httptest.NewRecorder()
	ex := &exchange{w: &responseWriter{ResponseWriter: rr}}

	ex.w.WriteHeader(http.StatusOK)

	assert.True(t, ex.started())
	assert.False(t, ex.respond(apperr.Classify(errors.New("x"))))
	assert.Empty(t, rr.Body.String())
}

func TestFail_WithoutExchangeDoesNotPanic(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	assert.NotPanics(t, func() {
		fail(req, errors.New("nowhere to go"))
	})
	assert.Nil(t, exchangeFrom(req))
}

func TestHandle_RoutesErrorIntoChain(t *testing.T) {
	h := newTestHandler()
	rr := httptest.NewRecorder()

	next := handle(func(w http.ResponseWriter, r *http.Request) error {
		return apperr.Conflict("taken")
	})
	h.withErrorHandling(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))

	require.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "taken", messageOf(t, rr))
}

func TestPanicError(t *testing.T) {
	cause := apperr.NotFound("x")

	assert.ErrorIs(t, panicError(cause), cause)
	assert.EqualError(t, panicError(42), "panic: 42")
}
