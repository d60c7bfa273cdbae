// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/around-api/internal/app"
	"github.com/MKhiriev/around-api/internal/utils"
	"github.com/MKhiriev/around-api/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

// healthz reports whether the server can reach its storage.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) error {
	if err := h.services.HealthService.Check(r.Context()); err != nil {
		return err
	}

	_, err := utils.WriteJSON(w, models.HealthResponse{Status: app.MsgStatusOK}, http.StatusOK)
	return err
}
