// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/around-api/internal/apperr"
)

// notFound is the router fallback for unmatched paths.
func notFound(w http.ResponseWriter, r *http.Request) {
	fail(r, apperr.NotFound(""))
}

// methodNotAllowed replaces chi's 405 with the same 404 an unknown path
// gets, so callers cannot discover which methods a route supports.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	fail(r, apperr.NotFound(""))
}
