// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/around-api/models"
)

// APIClient talks to a running API server.
//
// SignIn stores the issued token; every call on the /users and /cards
// routes sends it as a bearer credential.
type APIClient interface {
	SetToken(token string)
	Token() string

	SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error)
	SignIn(ctx context.Context, req models.SignInRequest) (string, error)

	Me(ctx context.Context) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, userID string) (models.User, error)
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.User, error)
	UpdateAvatar(ctx context.Context, req models.UpdateAvatarRequest) (models.User, error)

	ListCards(ctx context.Context) ([]models.Card, error)
	CreateCard(ctx context.Context, req models.CreateCardRequest) (models.Card, error)
	DeleteCard(ctx context.Context, cardID string) (models.Card, error)
	LikeCard(ctx context.Context, cardID string) (models.Card, error)
	UnlikeCard(ctx context.Context, cardID string) (models.Card, error)

	Health(ctx context.Context) (models.HealthResponse, error)
	Version(ctx context.Context) (string, error)
}
