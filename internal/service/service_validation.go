// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/around-api/internal/validators"
	"github.com/MKhiriev/around-api/models"
)

// Path parameter names as clients see them in error messages.
const (
	paramUserID = "userId"
	paramCardID = "cardId"
)

// UserValidationService validates payloads and IDs before handing them to
// the wrapped UserService.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService(validator validators.Validator) UserServiceWrapper {
	return &UserValidationService{validator: validator}
}

func (v *UserValidationService) ListUsers(ctx context.Context) ([]models.User, error) {
	return v.inner.ListUsers(ctx)
}

func (v *UserValidationService) GetUser(ctx context.Context, userID string) (models.User, error) {
	if err := v.validator.ValidateParam(ctx, paramUserID, userID, "required,uuid"); err != nil {
		return models.User{}, err
	}
	return v.inner.GetUser(ctx, userID)
}

func (v *UserValidationService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}
	return v.inner.UpdateProfile(ctx, userID, req)
}

func (v *UserValidationService) UpdateAvatar(ctx context.Context, userID string, req models.UpdateAvatarRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}
	return v.inner.UpdateAvatar(ctx, userID, req)
}

func (v *UserValidationService) Wrap(wrapped UserService) UserService {
	v.inner = wrapped
	return v
}

// CardValidationService validates payloads and IDs before handing them to
// the wrapped CardService.
type CardValidationService struct {
	inner     CardService
	validator validators.Validator
}

func NewCardValidationService(validator validators.Validator) CardServiceWrapper {
	return &CardValidationService{validator: validator}
}

func (v *CardValidationService) ListCards(ctx context.Context) ([]models.Card, error) {
	return v.inner.ListCards(ctx)
}

func (v *CardValidationService) CreateCard(ctx context.Context, ownerID string, req models.CreateCardRequest) (models.Card, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Card{}, err
	}
	return v.inner.CreateCard(ctx, ownerID, req)
}

func (v *CardValidationService) DeleteCard(ctx context.Context, cardID, userID string) (models.Card, error) {
	if err := v.validateCardID(ctx, cardID); err != nil {
		return models.Card{}, err
	}
	return v.inner.DeleteCard(ctx, cardID, userID)
}

func (v *CardValidationService) LikeCard(ctx context.Context, cardID, userID string) (models.Card, error) {
	if err := v.validateCardID(ctx, cardID); err != nil {
		return models.Card{}, err
	}
	return v.inner.LikeCard(ctx, cardID, userID)
}

func (v *CardValidationService) UnlikeCard(ctx context.Context, cardID, userID string) (models.Card, error) {
	if err := v.validateCardID(ctx, cardID); err != nil {
		return models.Card{}, err
	}
	return v.inner.UnlikeCard(ctx, cardID, userID)
}

func (v *CardValidationService) Wrap(wrapped CardService) CardService {
	v.inner = wrapped
	return v
}

func (v *CardValidationService) validateCardID(ctx context.Context, cardID string) error {
	return v.validator.ValidateParam(ctx, paramCardID, cardID, "required,uuid")
}
