// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultHTTPAddress     = ":3000"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultMaxBodyBytes    = 100 << 10

	DefaultTokenIssuer    = "around-api"
	DefaultTokenAlgorithm = "HS256"
	DefaultTokenDuration  = 7 * 24 * time.Hour

	DefaultDBDriver = DriverPostgres

	DefaultRateLimitWindow = 15 * time.Minute
	DefaultRateLimitMax    = 500

	DefaultLogLevel = "debug"
)

// Supported storage drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Defaults returns the configuration used for every field no other source sets.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:    DefaultTokenIssuer,
			TokenAlgorithm: DefaultTokenAlgorithm,
			TokenDuration:  DefaultTokenDuration,
			LogLevel:       DefaultLogLevel,
		},
		Storage: Storage{
			DB: DB{Driver: DefaultDBDriver},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
			MaxBodyBytes:    DefaultMaxBodyBytes,
		},
		RateLimit: RateLimit{
			Window: DefaultRateLimitWindow,
			Max:    DefaultRateLimitMax,
		},
	}
}
