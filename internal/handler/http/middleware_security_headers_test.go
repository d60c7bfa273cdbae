// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestWithSecurityHeaders_OnSuccessAndError(t *testing.T) {
	env := newTestEnv(t)
	env.health.EXPECT().Check(gomock.Any()).Return(nil)

	ok := env.do(http.MethodGet, "/healthz", "", nil)
	missing := env.do(http.MethodGet, "/nowhere", "", nil)

	for _, rr := range []*httptest.ResponseRecorder{ok, missing} {
		assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, "SAMEORIGIN", rr.Header().Get("X-Frame-Options"))
		assert.Equal(t, "no-referrer", rr.Header().Get("Referrer-Policy"))
		assert.Contains(t, rr.Header().Get("Content-Security-Policy"), "default-src 'self'")
		assert.Equal(t, "max-age=31536000; includeSubDomains", rr.Header().Get("Strict-Transport-Security"))
		assert.Equal(t, "same-origin", rr.Header().Get("Cross-Origin-Opener-Policy"))
		assert.Equal(t, "same-origin", rr.Header().Get("Cross-Origin-Resource-Policy"))
		assert.Equal(t, "?1", rr.Header().Get("Origin-Agent-Cluster"))
		assert.Equal(t, "noopen", rr.Header().Get("X-Download-Options"))
		assert.Equal(t, "off", rr.Header().Get("X-DNS-Prefetch-Control"))
		assert.Equal(t, "none", rr.Header().Get("X-Permitted-Cross-Domain-Policies"))
		assert.Equal(t, "0", rr.Header().Get("X-XSS-Protection"))
		assert.Empty(t, rr.Header().Get("X-Powered-By"))
	}
	assert.Equal(t, http.StatusOK, ok.Code)
	assert.Equal(t, http.StatusNotFound, missing.Code)
}
