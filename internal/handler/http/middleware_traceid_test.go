// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/around-api/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveWithTraceID(h *Handler, incoming string, next http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/cards", nil)
	if incoming != "" {
		req.Header.Set(traceIDHeader, incoming)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr
}

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name      string
		incoming  string
		wantReuse bool
	}{
		{"reuses uuid", "550e8400-e29b-41d4-a716-446655440000", true},
		{"reuses custom id", "frontend.req-42:retry_1", true},
		{"generates when missing", "", false},
		{"replaces id with spaces", "abc def", false},
		{"replaces id with newline", "abc\nINJECTED", false},
		{"replaces too long id", strings.Repeat("a", maxTraceIDLen+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			rr := serveWithTraceID(newTestHandler(), tt.incoming, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusTeapot)
			}))

			got := rr.Header().Get(traceIDHeader)
			require.NotEmpty(t, got)
			if tt.wantReuse {
				assert.Equal(t, tt.incoming, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err, "want generated UUID, got %q", got)
			}
			assert.True(t, nextCalled)
			assert.Equal(t, http.StatusTeapot, rr.Code)
		})
	}
}

func TestWithTraceID_GeneratedIDsAreUnique(t *testing.T) {
	h := newTestHandler()
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		seen[serveWithTraceID(h, "", next).Header().Get(traceIDHeader)] = struct{}{}
	}

	assert.Len(t, seen, 50)
}

func TestWithTraceID_RequestLoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	serveWithTraceID(h, "trace-1", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	}))

	assert.Contains(t, buf.String(), `"trace_id":"trace-1"`)
}

func TestValidTraceID_MaxLength(t *testing.T) {
	assert.True(t, validTraceID(strings.Repeat("x", maxTraceIDLen)))
	assert.False(t, validTraceID(strings.Repeat("x", maxTraceIDLen+1)))
}
