// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/around-api/internal/app"
	"github.com/MKhiriev/around-api/internal/apperr"
	"github.com/MKhiriev/around-api/internal/store"
)

// storeErrors maps storage sentinels to the client-facing error they become.
// Storage errors missing from the map stay unclassified and end up as 500.
var storeErrors = []struct {
	target error
	err    *apperr.Error
}{
	{store.ErrEmailAlreadyExists, apperr.Conflict(app.MsgEmailAlreadyExists)},
	{store.ErrUserNotFound, apperr.NotFound(app.MsgUserNotFound)},
	{store.ErrCardNotFound, apperr.NotFound(app.MsgCardNotFound)},
}

// mapStoreError translates a storage error into a classified service error.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	for _, m := range storeErrors {
		if errors.Is(err, m.target) {
			return m.err.Wrap(err)
		}
	}
	return err
}
