// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/around-api/internal/config"
	"github.com/MKhiriev/around-api/internal/logger"
	"github.com/MKhiriev/around-api/internal/store"
	"github.com/MKhiriev/around-api/internal/validators"
)

type Services struct {
	AuthService    AuthService
	TokenService   TokenService
	UserService    UserService
	CardService    CardService
	HealthService  HealthService
	AppInfoService AppInfoService
}

// NewServices wires every service on top of storages. User and card
// services are wrapped with request validation.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewRequestValidator()

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, logger),
		TokenService:   NewJWTService(cfg.App, logger),
		UserService:    NewUserValidationService(validator).Wrap(NewUserService(storages.UserRepository, logger)),
		CardService:    NewCardValidationService(validator).Wrap(NewCardService(storages.CardRepository, logger)),
		HealthService:  NewHealthService(storages.HealthChecker),
		AppInfoService: appInfoService,
	}, nil
}
