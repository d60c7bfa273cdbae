// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/around-api/internal/logger"
	"github.com/MKhiriev/around-api/internal/utils"
	"github.com/MKhiriev/around-api/models"
)

// signIn handles POST /signin.
//
// The body must hold exactly email and password. On success the response
// is 200 {"token": "<jwt>"}.
func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) error {
	log := logger.FromRequest(r)

	req, err := validate[models.SignInRequest](h, r, true)
	if err != nil {
		return err
	}

	ctx := r.Context()
	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		return err
	}

	token, err := h.services.TokenService.Issue(ctx, user.ID)
	if err != nil {
		return err
	}

	log.Info().Str("user_id", user.ID).Msg("user signed in")
	_, err = utils.WriteJSON(w, models.TokenResponse{Token: token.String()}, http.StatusOK)
	return err
}

// signUp handles POST /signup. Unknown keys in the body are ignored.
func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) error {
	log := logger.FromRequest(r)

	req, err := validate[models.SignUpRequest](h, r, false)
	if err != nil {
		return err
	}

	user, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		return err
	}

	log.Info().Str("user_id", user.ID).Msg("user registered")
	_, err = utils.WriteJSON(w, user, http.StatusCreated)
	return err
}
