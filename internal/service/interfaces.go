// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=UserServiceWrapper,CardServiceWrapper

package service

import (
	"context"

	"github.com/MKhiriev/around-api/models"
)

type AuthService interface {
	Register(ctx context.Context, req models.SignUpRequest) (models.User, error)
	Login(ctx context.Context, req models.SignInRequest) (models.User, error)
}

// TokenVerifier validates a bearer credential and extracts its identity claim.
// It performs no I/O.
type TokenVerifier interface {
	Verify(ctx context.Context, credential string) (models.Claims, error)
}

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(ctx context.Context, userID string) (models.Token, error)
}

// TokenService both issues and verifies tokens with one key.
type TokenService interface {
	TokenIssuer
	TokenVerifier
}

type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, userID string) (models.User, error)
	UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (models.User, error)
	UpdateAvatar(ctx context.Context, userID string, req models.UpdateAvatarRequest) (models.User, error)
}

type CardService interface {
	ListCards(ctx context.Context) ([]models.Card, error)
	CreateCard(ctx context.Context, ownerID string, req models.CreateCardRequest) (models.Card, error)
	DeleteCard(ctx context.Context, cardID, userID string) (models.Card, error)
	LikeCard(ctx context.Context, cardID, userID string) (models.Card, error)
	UnlikeCard(ctx context.Context, cardID, userID string) (models.Card, error)
}

type HealthService interface {
	Check(ctx context.Context) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

// CardServiceWrapper defines middleware composition for CardService.
type CardServiceWrapper interface {
	Wrap(CardService) CardService
}
