// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/caarlos0/env/v11"
)

// envPort is the conventional platform variable (Heroku, Cloud Run, ...)
// holding the port to listen on. SERVER_ADDRESS takes precedence over it.
const envPort = "PORT"

// parseEnv fills cfg from the environment following the `env` and
// `envPrefix` tags of [StructuredConfig].
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	port, ok := os.LookupEnv(envPort)
	if !ok || cfg.Server.HTTPAddress != "" {
		return nil
	}
	if n, err := strconv.Atoi(port); err != nil || n <= 0 || n > 65535 {
		return fmt.Errorf("error getting env configs: invalid %s %q", envPort, port)
	}
	cfg.Server.HTTPAddress = net.JoinHostPort("", port)

	return nil
}
