// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/around-api/internal/logger"

// Storages bundles every repository built on one database handle.
type Storages struct {
	UserRepository UserRepository
	CardRepository CardRepository
	HealthChecker  HealthChecker
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		CardRepository: NewCardRepository(db, log),
		HealthChecker:  db,
	}
}
