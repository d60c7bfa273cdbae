// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"slices"
)

var supportedTokenAlgorithms = []string{"HS256", "HS384", "HS512"}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a joined error naming every
// invalid group otherwise.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.TokenSignKey == "" {
		errs = append(errs, fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs))
	}
	if cfg.App.TokenAlgorithm != "" && !slices.Contains(supportedTokenAlgorithms, cfg.App.TokenAlgorithm) {
		errs = append(errs, fmt.Errorf("%w: unsupported token algorithm %q", ErrInvalidAppConfigs, cfg.App.TokenAlgorithm))
	}

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs))
	}
	switch cfg.Storage.DB.Driver {
	case "", DriverPostgres, DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver))
	}

	if cfg.Server.MaxBodyBytes < 0 {
		errs = append(errs, fmt.Errorf("%w: max body bytes must not be negative", ErrInvalidServerConfigs))
	}

	if cfg.RateLimit.Max < 0 || cfg.RateLimit.Window < 0 {
		errs = append(errs, fmt.Errorf("%w: window and max must not be negative", ErrInvalidRateLimitConfigs))
	}

	return errors.Join(errs...)
}
