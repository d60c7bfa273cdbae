// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_ApplyDefaults(t *testing.T) {
	var empty User
	empty.ApplyDefaults()
	assert.Equal(t, DefaultUserName, empty.Name)
	assert.Equal(t, DefaultUserAbout, empty.About)
	assert.Equal(t, DefaultUserAvatar, empty.Avatar)

	custom := User{Name: "Alice", About: "Diver", Avatar: "https://example.com/a.png"}
	custom.ApplyDefaults()
	assert.Equal(t, User{Name: "Alice", About: "Diver", Avatar: "https://example.com/a.png"}, custom)
}

func TestSignUpRequest_ToUser(t *testing.T) {
	user := SignUpRequest{Email: "a@b.co", Password: "secret1", Name: "Alice"}.ToUser()

	assert.Equal(t, "a@b.co", user.Email)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, DefaultUserAbout, user.About)
	assert.Empty(t, user.PasswordHash)
}

func TestUser_JSONHidesPasswordHash(t *testing.T) {
	data, err := json.Marshal(User{ID: "u1", Email: "a@b.co", PasswordHash: "hash"})
	require.NoError(t, err)

	assert.NotContains(t, string(data), "hash")
	assert.Contains(t, string(data), `"_id":"u1"`)
}

func TestCard_Ownership(t *testing.T) {
	card := Card{Owner: "u1", Likes: []string{"u2", "u3"}}

	assert.True(t, card.IsOwnedBy("u1"))
	assert.False(t, card.IsOwnedBy("u2"))
	assert.True(t, card.LikedBy("u3"))
	assert.False(t, card.LikedBy("u1"))
}

func TestClaims_GetUserID(t *testing.T) {
	claims := Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"}}
	id, err := claims.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, "u1", id)

	_, err = (&Claims{}).GetUserID()
	assert.ErrorIs(t, err, ErrEmptySubject)
}

func TestToken_String(t *testing.T) {
	assert.Equal(t, "a.b.c", Token{SignedString: "a.b.c"}.String())
}

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "abc")

	assert.Equal(t, AppBuildInfo{BuildVersion: "1.0.0", BuildDate: "N/A", BuildCommit: "abc"}, info)
	assert.Equal(t, "Build version: 1.0.0\nBuild date: N/A\nBuild commit: abc\n", info.String())
}
