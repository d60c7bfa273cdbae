// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/around-api/internal/logger"
	"github.com/MKhiriev/around-api/internal/store"
	"github.com/MKhiriev/around-api/models"
)

type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.ListUsers").Msg("error listing users")
		return nil, mapStoreError(err)
	}
	return users, nil
}

// GetUser returns the user or 404 "User not found".
func (s *userService) GetUser(ctx context.Context, userID string) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, mapStoreError(err)
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (models.User, error) {
	return s.update(ctx, userID, models.ProfileUpdate{Name: &req.Name, About: &req.About})
}

func (s *userService) UpdateAvatar(ctx context.Context, userID string, req models.UpdateAvatarRequest) (models.User, error) {
	return s.update(ctx, userID, models.ProfileUpdate{Avatar: &req.Avatar})
}

func (s *userService) update(ctx context.Context, userID string, update models.ProfileUpdate) (models.User, error) {
	user, err := s.userRepository.UpdateUser(ctx, userID, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.update").Str("user_id", userID).Msg("error updating user")
		return models.User{}, mapStoreError(err)
	}
	return user, nil
}
