// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/around-api/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidTokenParams   = errors.New("invalid params for generating JWT Token")
	ErrUnsupportedAlgorithm = errors.New("unsupported JWT signing algorithm")
	ErrInvalidAuthHeader    = errors.New("invalid authorization header")
)

// bearerPrefix is matched case-sensitively, including the trailing space.
const bearerPrefix = "Bearer "

// TokenParams holds everything needed to sign an access token.
type TokenParams struct {
	Issuer    string
	UserID    string
	Duration  time.Duration
	SignKey   string
	Algorithm string
}

// SigningMethod resolves an HMAC algorithm name (HS256, HS384, HS512).
// An empty name means HS256.
func SigningMethod(algorithm string) (*jwt.SigningMethodHMAC, error) {
	switch algorithm {
	case "", jwt.SigningMethodHS256.Alg():
		return jwt.SigningMethodHS256, nil
	case jwt.SigningMethodHS384.Alg():
		return jwt.SigningMethodHS384, nil
	case jwt.SigningMethodHS512.Alg():
		return jwt.SigningMethodHS512, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
	}
}

// GenerateJWTToken creates a signed HMAC JWT token.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus Duration
//
// Issuer, UserID, SignKey and a non-zero Duration are required.
//
//	token, err := utils.GenerateJWTToken(utils.TokenParams{
//	    Issuer: "around-api", UserID: id, Duration: time.Hour, SignKey: "secret",
//	})
func GenerateJWTToken(params TokenParams) (models.Token, error) {
	if params.Issuer == "" || params.UserID == "" || params.Duration == 0 || params.SignKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	method, err := SigningMethod(params.Algorithm)
	if err != nil {
		return models.Token{}, err
	}

	now := time.Now()
	expiresAt := now.Add(params.Duration)
	claims := &jwt.RegisteredClaims{
		Issuer:    params.Issuer,
		Subject:   params.UserID,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	tokenString, err := jwt.NewWithClaims(method, claims).SignedString([]byte(params.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{SignedString: tokenString, UserID: params.UserID, ExpiresAt: expiresAt}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Algorithm check: only the configured HMAC algorithm is accepted
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against tokenIssuer
//   - Expiration (exp) claim presence and check
//   - Subject (sub) claim presence
//
// Errors returned by the jwt library are wrapped, so callers can still
// match them with errors.Is (e.g. jwt.ErrTokenExpired).
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer, algorithm string) (models.Claims, error) {
	method, err := SigningMethod(algorithm)
	if err != nil {
		return models.Claims{}, err
	}

	claims := &models.Claims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithValidMethods([]string{method.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Claims{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID, err := claims.GetUserID()
	if err != nil {
		return models.Claims{}, err
	}
	claims.UserID = userID

	return *claims, nil
}

// ParseBearerToken extracts the credential from an Authorization header of
// the form "Bearer <token>". The prefix is case-sensitive and the token must
// be non-empty.
func ParseBearerToken(authorizationHeader string) (string, error) {
	token, found := strings.CutPrefix(authorizationHeader, bearerPrefix)
	if !found || strings.TrimSpace(token) == "" {
		return "", ErrInvalidAuthHeader
	}
	return token, nil
}
