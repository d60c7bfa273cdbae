// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/around-api/internal/config"
	"github.com/MKhiriev/around-api/internal/logger"
	"github.com/MKhiriev/around-api/internal/ratelimit"
	"github.com/MKhiriev/around-api/internal/service"
	"github.com/MKhiriev/around-api/internal/validators"
)

// Handler holds the dependencies shared by the pipeline stages and the
// route handlers.
type Handler struct {
	services *service.Services

	// limiter may be nil, which disables the rate limiting stage.
	limiter   ratelimit.Limiter
	validator validators.Validator

	cfg    config.Server
	logger *logger.Logger
}

// NewHandler creates a Handler. A nil limiter turns rate limiting off.
func NewHandler(services *service.Services, limiter ratelimit.Limiter, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		limiter:   limiter,
		validator: validators.NewRequestValidator(),
		cfg:       cfg,
		logger:    logger,
	}
}
