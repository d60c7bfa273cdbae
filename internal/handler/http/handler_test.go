// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/around-api/internal/config"
	"github.com/MKhiriev/around-api/internal/logger"
	"github.com/MKhiriev/around-api/internal/mock"
	"github.com/MKhiriev/around-api/internal/service"
	"github.com/MKhiriev/around-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testEnv is a fully wired router whose services are gomock mocks.
type testEnv struct {
	auth    *mock.MockAuthService
	tokens  *mock.MockTokenService
	users   *mock.MockUserService
	cards   *mock.MockCardService
	health  *mock.MockHealthService
	appInfo *mock.MockAppInfoService
	limiter *mock.MockLimiter

	handler *Handler
	router  http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := &testEnv{
		auth:    mock.NewMockAuthService(ctrl),
		tokens:  mock.NewMockTokenService(ctrl),
		users:   mock.NewMockUserService(ctrl),
		cards:   mock.NewMockCardService(ctrl),
		health:  mock.NewMockHealthService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
		limiter: mock.NewMockLimiter(ctrl),
	}

	services := &service.Services{
		AuthService:    env.auth,
		TokenService:   env.tokens,
		UserService:    env.users,
		CardService:    env.cards,
		HealthService:  env.health,
		AppInfoService: env.appInfo,
	}

	env.handler = NewHandler(services, nil, config.Server{MaxBodyBytes: 1024}, logger.Nop())
	env.router = env.handler.Init()
	return env
}

// limited switches the rate limiting stage on.
func (e *testEnv) limited() *testEnv {
	e.handler.limiter = e.limiter
	e.router = e.handler.Init()
	return e
}

// authorized makes "Bearer good" verify as userID.
func (e *testEnv) authorized(userID string) string {
	e.tokens.EXPECT().Verify(gomock.Any(), "good").Return(testClaims(userID), nil).AnyTimes()
	return "Bearer good"
}

func (e *testEnv) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func testClaims(userID string) models.Claims {
	claims := models.Claims{UserID: userID}
	claims.Subject = userID
	return claims
}

func authHeader(value string) map[string]string {
	return map[string]string{"Authorization": value}
}

// messageOf decodes a {"message": ...} body.
func messageOf(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body models.MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), "body: %s", rr.Body.String())
	return body.Message
}

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()
	cfg := config.Server{MaxBodyBytes: 10, TrustProxy: true}

	h := NewHandler(svc, nil, cfg, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, log, h.logger)
	assert.Equal(t, cfg, h.cfg)
	assert.Nil(t, h.limiter)
	assert.NotNil(t, h.validator)
}
