// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/around-api/internal/utils"
	"github.com/MKhiriev/around-api/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) error {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, users, http.StatusOK)
	return err
}

func (h *Handler) getCurrentUser(w http.ResponseWriter, r *http.Request) error {
	userID, err := callerID(r)
	if err != nil {
		return err
	}

	return h.writeUser(w, r, userID)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) error {
	return h.writeUser(w, r, chi.URLParam(r, "userId"))
}

func (h *Handler) writeUser(w http.ResponseWriter, r *http.Request, userID string) error {
	user, err := h.services.UserService.GetUser(r.Context(), userID)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, user, http.StatusOK)
	return err
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) error {
	userID, err := callerID(r)
	if err != nil {
		return err
	}

	req, err := decode[models.UpdateProfileRequest](r, true)
	if err != nil {
		return err
	}

	user, err := h.services.UserService.UpdateProfile(r.Context(), userID, req)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, user, http.StatusOK)
	return err
}

func (h *Handler) updateAvatar(w http.ResponseWriter, r *http.Request) error {
	userID, err := callerID(r)
	if err != nil {
		return err
	}

	req, err := decode[models.UpdateAvatarRequest](r, true)
	if err != nil {
		return err
	}

	user, err := h.services.UserService.UpdateAvatar(r.Context(), userID, req)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, user, http.StatusOK)
	return err
}

// callerID returns the user ID the auth gate stored for the request.
func callerID(r *http.Request) (string, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return "", ErrNoCaller
	}
	return userID, nil
}
