// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/around-api/internal/apperr"
	"github.com/MKhiriev/around-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		strict  bool
		want    models.SignInRequest
		wantMsg string
	}{
		{
			name: "valid",
			body: `{"email":"jacques@example.com","password":"secret1"}`,
			want: models.SignInRequest{Email: "jacques@example.com", Password: "secret1"},
		},
		{
			name: "empty body",
			body: "  ",
		},
		{
			name:    "unknown key rejected when strict",
			body:    `{"email":"jacques@example.com","password":"secret1","role":"admin"}`,
			strict:  true,
			wantMsg: `"role" is not allowed`,
		},
		{
			name:    "key case must match exactly when strict",
			body:    `{"EMAIL":"jacques@example.com","Password":"secret1"}`,
			strict:  true,
			wantMsg: `"EMAIL" is not allowed`,
		},
		{
			name:    "single miscased key when strict",
			body:    `{"email":"jacques@example.com","Password":"secret1"}`,
			strict:  true,
			wantMsg: `"Password" is not allowed`,
		},
		{
			name:   "exact keys accepted when strict",
			body:   `{"email":"jacques@example.com","password":"secret1"}`,
			strict: true,
			want:   models.SignInRequest{Email: "jacques@example.com", Password: "secret1"},
		},
		{
			name: "unknown key tolerated otherwise",
			body: `{"email":"jacques@example.com","password":"secret1","role":"admin"}`,
			want: models.SignInRequest{Email: "jacques@example.com", Password: "secret1"},
		},
		{
			name:    "wrong type",
			body:    `{"email":42}`,
			wantMsg: `"email" must be a string`,
		},
		{
			name:    "not an object",
			body:    `[1,2]`,
			wantMsg: `"value" must be of type object`,
		},
		{
			name:    "not an object when strict",
			body:    `[1,2]`,
			strict:  true,
			wantMsg: `"value" must be of type object`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.SignInRequest
			err := DecodeJSON([]byte(tt.body), &got, tt.strict)

			if tt.wantMsg != "" {
				assertValidationMessage(t, err, tt.wantMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeJSON_SyntaxError(t *testing.T) {
	var got models.SignInRequest
	err := DecodeJSON([]byte(`{"email" 1}`), &got, false)

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.StatusOf(err))
	assert.Contains(t, err.Error(), "invalid character")
}
