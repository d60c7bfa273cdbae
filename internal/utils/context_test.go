// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/around-api/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestClaimsCtxKey(t *testing.T) {
	if ClaimsCtxKey.String() != "claims" {
		t.Errorf("expected 'claims', got '%s'", ClaimsCtxKey.String())
	}
}

func TestGetClaimsFromContext_Success(t *testing.T) {
	ctx := WithClaims(context.Background(), models.Claims{UserID: "u-1"})

	claims, ok := GetClaimsFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if claims.UserID != "u-1" {
		t.Errorf("expected UserID=u-1, got %s", claims.UserID)
	}
}

func TestGetClaimsFromContext_Missing(t *testing.T) {
	_, ok := GetClaimsFromContext(context.Background())
	if ok {
		t.Fatal("expected ok=false, got true")
	}
}

func TestGetClaimsFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), ClaimsCtxKey, "not-claims")

	_, ok := GetClaimsFromContext(ctx)
	if ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetUserIDFromContext_Success(t *testing.T) {
	ctx := WithClaims(context.Background(), models.Claims{UserID: "0192a3b4-0000-7000-8000-000000000001"})

	userID, ok := GetUserIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if userID != "0192a3b4-0000-7000-8000-000000000001" {
		t.Errorf("unexpected userID %s", userID)
	}
}

func TestGetUserIDFromContext_EmptyID(t *testing.T) {
	ctx := WithClaims(context.Background(), models.Claims{})

	userID, ok := GetUserIDFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for empty ID, got true")
	}
	if userID != "" {
		t.Errorf("expected empty userID, got %s", userID)
	}
}

func TestGetUserIDFromContext_DifferentKey(t *testing.T) {
	otherKey := contextKey("otherKey")
	ctx := context.WithValue(context.Background(), otherKey, models.Claims{UserID: "u-1"})

	_, ok := GetUserIDFromContext(ctx)
	if ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}
