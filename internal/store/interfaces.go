// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

package store

import (
	"context"

	"github.com/MKhiriev/around-api/models"
)

// UserRepository persists user accounts and profiles.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, userID string, update models.ProfileUpdate) (models.User, error)
}

// CardRepository persists cards and their likes.
type CardRepository interface {
	CreateCard(ctx context.Context, card models.Card) (models.Card, error)
	ListCards(ctx context.Context) ([]models.Card, error)
	FindCardByID(ctx context.Context, cardID string) (models.Card, error)
	DeleteCard(ctx context.Context, cardID string) error
	AddLike(ctx context.Context, cardID, userID string) (models.Card, error)
	RemoveLike(ctx context.Context, cardID, userID string) (models.Card, error)
}

// HealthChecker reports whether the storage backend is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// ErrorClassificator maps driver-specific errors to the storage layer's
// notions of retryability and constraint violations.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
	IsForeignKeyViolation(err error) bool
}
