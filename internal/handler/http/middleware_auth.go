// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/around-api/internal/apperr"
	"github.com/MKhiriev/around-api/internal/logger"
	"github.com/MKhiriev/around-api/internal/utils"
	"github.com/rs/zerolog"
)

// auth is the gate in front of the protected routers.
//
// It requires an "Authorization: Bearer <token>" header and verifies the
// token with the token service. A missing or malformed header fails with
// 401 "Authorization required" without consulting the verifier; verifier
// errors are passed on unchanged. On success the claims are stored in the
// request context (see [utils.GetClaimsFromContext]) and the request
// logger gains a user_id field.
//
// The gate never writes a response itself.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			fail(r, apperr.Authentication(apperr.MsgAuthorizationRequired).Wrap(err))
			return
		}

		ctx := r.Context()
		claims, err := h.services.TokenService.Verify(ctx, token)
		if err != nil {
			fail(r, err)
			return
		}

		l := logger.FromRequest(r).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("user_id", claims.UserID)
		})
		ctx = l.WithContext(utils.WithClaims(ctx, claims))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
