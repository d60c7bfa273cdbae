// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/around-api/internal/apperr"
	"github.com/MKhiriev/around-api/internal/config"
	"github.com/MKhiriev/around-api/internal/logger"
	"github.com/MKhiriev/around-api/internal/utils"
	"github.com/MKhiriev/around-api/models"
)

// jwtService issues and verifies HMAC-signed JWT access tokens.
// All state is read-only after construction.
type jwtService struct {
	// signKey is the HMAC secret used to sign and verify tokens.
	signKey string

	// issuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected.
	issuer string

	// algorithm is one of HS256, HS384, HS512.
	algorithm string

	duration time.Duration

	logger *logger.Logger
}

// NewJWTService constructs the token issuer/verifier from cfg.
func NewJWTService(cfg config.App, logger *logger.Logger) TokenService {
	return &jwtService{
		signKey:   cfg.TokenSignKey,
		issuer:    cfg.TokenIssuer,
		algorithm: cfg.TokenAlgorithm,
		duration:  cfg.TokenDuration,
		logger:    logger,
	}
}

// Issue signs a token for userID.
func (s *jwtService) Issue(ctx context.Context, userID string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(utils.TokenParams{
		Issuer:    s.issuer,
		UserID:    userID,
		Duration:  s.duration,
		SignKey:   s.signKey,
		Algorithm: s.algorithm,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*jwtService.Issue").Msg("error signing token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify checks the signature, algorithm, issuer and expiry of credential
// and returns its claims. Any failure is reported as 401 "Invalid token";
// the underlying jwt error is kept as the cause.
func (s *jwtService) Verify(ctx context.Context, credential string) (models.Claims, error) {
	claims, err := utils.ValidateAndParseJWTToken(credential, s.signKey, s.issuer, s.algorithm)
	if err != nil {
		return models.Claims{}, apperr.Authentication(apperr.MsgInvalidToken).Wrap(err)
	}

	return claims, nil
}
