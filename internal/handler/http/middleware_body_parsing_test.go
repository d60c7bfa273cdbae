// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/around-api/internal/apperr"
	"github.com/MKhiriev/around-api/internal/config"
	"github.com/MKhiriev/around-api/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serveBody runs req through withErrorHandling and withBodyParsing and
// returns what the next stage read from the body.
func serveBody(t *testing.T, limit int64, req *http.Request) (*httptest.ResponseRecorder, string, bool) {
	t.Helper()
	h := &Handler{cfg: config.Server{MaxBodyBytes: limit}, logger: logger.Nop()}

	var (
		got        string
		nextCalled bool
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		got = string(b)
	})

	rr := httptest.NewRecorder()
	h.withErrorHandling(h.withBodyParsing(next)).ServeHTTP(rr, req)
	return rr, got, nextCalled
}

func jsonRequest(body io.Reader) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/signin", body)
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	return req
}

func gzipped(t *testing.T, s string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	return &buf
}

func TestWithBodyParsing_PassesValidJSON(t *testing.T) {
	rr, got, nextCalled := serveBody(t, 1024, jsonRequest(strings.NewReader(`{"email":"a@b.co"}`)))

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"email":"a@b.co"}`, got)
}

func TestWithBodyParsing_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		limit      int64
		wantStatus int
		wantMsg    string
	}{
		{"syntax error", `{"email": }`, 1024, http.StatusBadRequest, "invalid character '}' looking for beginning of value"},
		{"truncated", `{"email": "a"`, 1024, http.StatusBadRequest, "unexpected end of JSON input"},
		{"scalar body", `"just a string"`, 1024, http.StatusBadRequest, `invalid character '"' looking for beginning of object or array`},
		{"too large", `{"name":"` + strings.Repeat("x", 64) + `"}`, 32, http.StatusRequestEntityTooLarge, apperr.MsgBodyTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, _, nextCalled := serveBody(t, tt.limit, jsonRequest(strings.NewReader(tt.body)))

			assert.False(t, nextCalled)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMsg, messageOf(t, rr))
		})
	}
}

func TestWithBodyParsing_Gzip(t *testing.T) {
	req := jsonRequest(gzipped(t, `{"email":"a@b.co"}`))
	req.Header.Set("Content-Encoding", "gzip")

	rr, got, nextCalled := serveBody(t, 1024, req)

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"email":"a@b.co"}`, got)
}

func TestWithBodyParsing_GzipLimitAppliesToDecodedSize(t *testing.T) {
	req := jsonRequest(gzipped(t, `{"name":"`+strings.Repeat("x", 4096)+`"}`))
	req.Header.Set("Content-Encoding", "gzip")

	rr, _, nextCalled := serveBody(t, 1024, req)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}

func TestWithBodyParsing_InvalidGzip(t *testing.T) {
	req := jsonRequest(strings.NewReader("not gzip at all"))
	req.Header.Set("Content-Encoding", "gzip")

	rr, _, nextCalled := serveBody(t, 1024, req)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "invalid gzip data", messageOf(t, rr))
}

func TestWithBodyParsing_UnsupportedEncoding(t *testing.T) {
	req := jsonRequest(strings.NewReader(`{}`))
	req.Header.Set("Content-Encoding", "br")

	rr, _, nextCalled := serveBody(t, 1024, req)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnsupportedMediaType, rr.Code)
	assert.Equal(t, `unsupported content encoding "br"`, messageOf(t, rr))
}

func TestWithBodyParsing_NonJSONBodyIsDropped(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/signin", strings.NewReader("email=a@b.co"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rr, got, nextCalled := serveBody(t, 1024, req)

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, got)
}

func TestWithBodyParsing_DefaultLimit(t *testing.T) {
	body := `{"name":"` + strings.Repeat("x", int(defaultMaxBodyBytes)) + `"}`

	rr, _, nextCalled := serveBody(t, 0, jsonRequest(strings.NewReader(body)))

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}

func TestIsJSONRequest(t *testing.T) {
	tests := map[string]bool{
		"application/json":                true,
		"application/json; charset=utf-8": true,
		"application/merge-patch+json":    true,
		"text/plain":                      false,
		"":                                false,
	}

	for contentType, want := range tests {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Content-Type", contentType)
		assert.Equal(t, want, isJSONRequest(req), contentType)
	}
}
