// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/around-api/internal/logger"
	"github.com/MKhiriev/around-api/internal/utils"
	"github.com/MKhiriev/around-api/models"
	"github.com/go-resty/resty/v2"
)

type httpAPIClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAPIClient constructs an [APIClient] for the server at address.
// A missing scheme defaults to http. Requests rejected with 429 are retried
// up to retries times.
func NewHTTPAPIClient(address string, timeout time.Duration, retries int, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid api address: %w", err)
	}

	return &httpAPIClient{
		client: utils.NewHTTPClient(baseURL, timeout, retries),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [APIClient].
func (c *httpAPIClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

// Token implements [APIClient].
func (c *httpAPIClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SignUp implements [APIClient]. It POSTs to /signup and returns the
// created user.
func (c *httpAPIClient) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	var user models.User
	if err := c.send(ctx, http.MethodPost, "/signup", req, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// SignIn implements [APIClient]. On success the returned token is also
// stored for subsequent requests.
func (c *httpAPIClient) SignIn(ctx context.Context, req models.SignInRequest) (string, error) {
	var body models.TokenResponse
	if err := c.send(ctx, http.MethodPost, "/signin", req, &body); err != nil {
		return "", err
	}

	c.SetToken(body.Token)
	c.logger.Debug().Str("func", "*httpAPIClient.SignIn").Str("email", req.Email).Msg("signed in")
	return body.Token, nil
}

func (c *httpAPIClient) Me(ctx context.Context) (models.User, error) {
	var user models.User
	err := c.send(ctx, http.MethodGet, "/users/me", nil, &user)
	return user, err
}

func (c *httpAPIClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := c.send(ctx, http.MethodGet, "/users", nil, &users)
	return users, err
}

func (c *httpAPIClient) GetUser(ctx context.Context, userID string) (models.User, error) {
	var user models.User
	err := c.send(ctx, http.MethodGet, "/users/"+url.PathEscape(userID), nil, &user)
	return user, err
}

func (c *httpAPIClient) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.User, error) {
	var user models.User
	err := c.send(ctx, http.MethodPatch, "/users/me", req, &user)
	return user, err
}

func (c *httpAPIClient) UpdateAvatar(ctx context.Context, req models.UpdateAvatarRequest) (models.User, error) {
	var user models.User
	err := c.send(ctx, http.MethodPatch, "/users/me/avatar", req, &user)
	return user, err
}

func (c *httpAPIClient) ListCards(ctx context.Context) ([]models.Card, error) {
	var cards []models.Card
	err := c.send(ctx, http.MethodGet, "/cards", nil, &cards)
	return cards, err
}

func (c *httpAPIClient) CreateCard(ctx context.Context, req models.CreateCardRequest) (models.Card, error) {
	var card models.Card
	err := c.send(ctx, http.MethodPost, "/cards", req, &card)
	return card, err
}

func (c *httpAPIClient) DeleteCard(ctx context.Context, cardID string) (models.Card, error) {
	var card models.Card
	err := c.send(ctx, http.MethodDelete, cardPath(cardID), nil, &card)
	return card, err
}

func (c *httpAPIClient) LikeCard(ctx context.Context, cardID string) (models.Card, error) {
	var card models.Card
	err := c.send(ctx, http.MethodPut, cardPath(cardID)+"/likes", nil, &card)
	return card, err
}

func (c *httpAPIClient) UnlikeCard(ctx context.Context, cardID string) (models.Card, error) {
	var card models.Card
	err := c.send(ctx, http.MethodDelete, cardPath(cardID)+"/likes", nil, &card)
	return card, err
}

// Health implements [APIClient]. An unhealthy server answers 500, which is
// returned as [ErrInternalServerError].
func (c *httpAPIClient) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse
	err := c.send(ctx, http.MethodGet, "/healthz", nil, &health)
	return health, err
}

// Version implements [APIClient]. The endpoint answers in plain text.
func (c *httpAPIClient) Version(ctx context.Context) (string, error) {
	resp, err := c.request(ctx).Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// send performs a JSON request. A nil body sends no payload; result is
// decoded only for 2xx responses.
func (c *httpAPIClient) send(ctx context.Context, method, path string, body, result any) error {
	req := c.request(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s request: %w", method, path, err)
	}

	return mapHTTPError(resp)
}

func (c *httpAPIClient) request(ctx context.Context) *resty.Request {
	req := c.client.R().
		SetContext(ctx).
		SetError(&models.MessageResponse{})
	if token := c.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func cardPath(cardID string) string {
	return "/cards/" + url.PathEscape(cardID)
}
