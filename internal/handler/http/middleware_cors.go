// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

const corsMaxAge = 86400

var corsAllowedMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPut,
	http.MethodPatch,
	http.MethodPost,
	http.MethodDelete,
}

// withCORS adds the CORS headers for allowed origins. An empty origin list,
// or one containing "*", allows every origin.
//
// OPTIONS requests are answered here with 204 and never reach the routes.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:     h.cfg.CORSAllowedOrigins,
		AllowedMethods:     corsAllowedMethods,
		AllowedHeaders:     []string{"*"},
		MaxAge:             corsMaxAge,
		OptionsPassthrough: true,
	})

	return c.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.Header().Set("Content-Length", "0")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	}))
}
