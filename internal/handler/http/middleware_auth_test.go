// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/around-api/internal/apperr"
	"github.com/MKhiriev/around-api/internal/logger"
	"github.com/MKhiriev/around-api/internal/mock"
	"github.com/MKhiriev/around-api/internal/service"
	"github.com/MKhiriev/around-api/internal/utils"
	"github.com/MKhiriev/around-api/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthHandler(t *testing.T) (*Handler, *mock.MockTokenService) {
	t.Helper()
	tokens := mock.NewMockTokenService(gomock.NewController(t))
	return &Handler{
		services: &service.Services{TokenService: tokens},
		logger:   logger.Nop(),
	}, tokens
}

func executeAuth(h *Handler, header string, next http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}

	rr := httptest.NewRecorder()
	h.withErrorHandling(h.auth(next)).ServeHTTP(rr, req)
	return rr
}

func TestAuth_MalformedHeaderSkipsVerifier(t *testing.T) {
	headers := []string{
		"",
		"Bearer",
		"Bearer ",
		"Bearer    ",
		"bearer abc",
		"BEARER abc",
		"Basic dXNlcjpwYXNz",
		"abc",
	}

	for _, header := range headers {
		t.Run(header, func(t *testing.T) {
			// no Verify expectation: calling it fails the test
			h, _ := newAuthHandler(t)
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("next must not run")
			})

			rr := executeAuth(h, header, next)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, apperr.MsgAuthorizationRequired, messageOf(t, rr))
		})
	}
}

func TestAuth_VerifierErrorPropagatesUnchanged(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"invalid token", apperr.Authentication(apperr.MsgInvalidToken).Wrap(jwt.ErrTokenExpired), http.StatusUnauthorized, apperr.MsgInvalidToken},
		{"custom classified", apperr.Authorization("banned"), http.StatusForbidden, "banned"},
		{"unclassified", errors.New("key store down"), http.StatusInternalServerError, "something went wrong with the server: key store down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, tokens := newAuthHandler(t)
			tokens.EXPECT().Verify(gomock.Any(), "abc.def.ghi").Return(models.Claims{}, tt.err)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("next must not run")
			})

			rr := executeAuth(h, "Bearer abc.def.ghi", next)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMsg, messageOf(t, rr))
		})
	}
}

func TestAuth_SuccessAttachesClaims(t *testing.T) {
	h, tokens := newAuthHandler(t)
	tokens.EXPECT().Verify(gomock.Any(), "good").Return(testClaims("user-1"), nil)

	var (
		claims models.Claims
		found  bool
		userID string
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, found = utils.GetClaimsFromContext(r.Context())
		userID, _ = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	rr := executeAuth(h, "Bearer good", next)

	require.True(t, found)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user-1", userID)
}

func TestAuth_TokenKeepsEverythingAfterPrefix(t *testing.T) {
	h, tokens := newAuthHandler(t)
	tokens.EXPECT().Verify(gomock.Any(), "a b").Return(testClaims("u"), nil)

	rr := executeAuth(h, "Bearer a b", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestAuth_RequestLoggerGetsUserID(t *testing.T) {
	h, tokens := newAuthHandler(t)
	tokens.EXPECT().Verify(gomock.Any(), "good").Return(testClaims("user-42"), nil)

	var buf bytes.Buffer
	h.logger = &logger.Logger{Logger: zerolog.New(&buf)}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer good")
	h.withTraceID(h.withErrorHandling(h.auth(next))).ServeHTTP(rr, req)

	assert.Contains(t, buf.String(), `"user_id":"user-42"`)
	assert.Contains(t, buf.String(), `"trace_id"`)
}
