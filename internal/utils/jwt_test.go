// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer = "test-issuer"
	testKey    = "secret-key"
	testUserID = "0192a3b4-5c6d-7e8f-9a0b-1c2d3e4f5a6b"
)

func validParams() TokenParams {
	return TokenParams{
		Issuer:   testIssuer,
		UserID:   testUserID,
		Duration: time.Hour,
		SignKey:  testKey,
	}
}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(validParams())

	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, testUserID, token.UserID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, 5*time.Second)

	claims := &jwt.RegisteredClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token.SignedString, claims)
	require.NoError(t, err)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.Equal(t, testUserID, claims.Subject)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TokenParams)
	}{
		{"empty issuer", func(p *TokenParams) { p.Issuer = "" }},
		{"empty user", func(p *TokenParams) { p.UserID = "" }},
		{"zero duration", func(p *TokenParams) { p.Duration = 0 }},
		{"empty key", func(p *TokenParams) { p.SignKey = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validParams()
			tt.mutate(&params)

			_, err := GenerateJWTToken(params)
			assert.ErrorIs(t, err, ErrInvalidTokenParams)
		})
	}
}

func TestGenerateJWTToken_UnsupportedAlgorithm(t *testing.T) {
	params := validParams()
	params.Algorithm = "RS256"

	_, err := GenerateJWTToken(params)
	assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	for _, alg := range []string{"", "HS256", "HS384", "HS512"} {
		t.Run("alg "+alg, func(t *testing.T) {
			params := validParams()
			params.Algorithm = alg
			token, err := GenerateJWTToken(params)
			require.NoError(t, err)

			claims, err := ValidateAndParseJWTToken(token.SignedString, testKey, testIssuer, alg)

			require.NoError(t, err)
			assert.Equal(t, testUserID, claims.UserID)
		})
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	token, _ := GenerateJWTToken(validParams())

	_, err := ValidateAndParseJWTToken(token.SignedString, "wrong-key", testIssuer, "")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	params := validParams()
	params.Duration = -time.Second
	token, _ := GenerateJWTToken(params)

	_, err := ValidateAndParseJWTToken(token.SignedString, testKey, testIssuer, "")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	token, _ := GenerateJWTToken(validParams())

	_, err := ValidateAndParseJWTToken(token.SignedString, testKey, "fake-issuer", "")
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
}

func TestValidateAndParseJWTToken_WrongAlgorithm(t *testing.T) {
	params := validParams()
	params.Algorithm = "HS512"
	token, _ := GenerateJWTToken(params)

	_, err := ValidateAndParseJWTToken(token.SignedString, testKey, testIssuer, "HS256")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestValidateAndParseJWTToken_MissingExpiry(t *testing.T) {
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:  testIssuer,
		Subject: testUserID,
	}).SignedString([]byte(testKey))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(raw, testKey, testIssuer, "")
	assert.ErrorIs(t, err, jwt.ErrTokenRequiredClaimMissing)
}

func TestValidateAndParseJWTToken_MissingSubject(t *testing.T) {
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    testIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testKey))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(raw, testKey, testIssuer, "")
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	for _, raw := range []string{"", "not.a.token", "garbage"} {
		_, err := ValidateAndParseJWTToken(raw, testKey, testIssuer, "")
		assert.Error(t, err, "token %q", raw)
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"empty header", "", "", true},
		{"prefix only", "Bearer ", "", true},
		{"prefix with spaces", "Bearer    ", "", true},
		{"lowercase scheme", "bearer abc", "", true},
		{"no space", "Bearerabc", "", true},
		{"basic scheme", "Basic dXNlcjpwYXNz", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAuthHeader)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
