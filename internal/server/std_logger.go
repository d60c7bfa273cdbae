// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	stdlog "log"

	"github.com/MKhiriev/around-api/internal/logger"
)

// newStdLogger routes net/http's internal messages (TLS handshake and
// connection errors) into the application logger.
func newStdLogger(l *logger.Logger) *stdlog.Logger {
	child := l.With().Str("component", "net/http").Logger()
	return stdlog.New(child, "", 0)
}
