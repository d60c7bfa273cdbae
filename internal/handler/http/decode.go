// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/around-api/internal/validators"
)

// decode reads the request body into a T. With strict set, keys that T
// does not declare are rejected.
func decode[T any](r *http.Request, strict bool) (T, error) {
	var req T

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return req, fmt.Errorf("error reading request body: %w", err)
	}

	if err = validators.DecodeJSON(body, &req, strict); err != nil {
		return req, err
	}

	return req, nil
}

// validate decodes the request body into a T and checks it against the
// validate tags of T.
func validate[T any](h *Handler, r *http.Request, strict bool) (T, error) {
	req, err := decode[T](r, strict)
	if err != nil {
		return req, err
	}

	if err = h.validator.Validate(r.Context(), req); err != nil {
		return req, err
	}

	return req, nil
}
