// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. The stage order is fixed: every request passes
// rate limiting before anything else can reject it, and every failure ends
// in the error handling stage.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	stages := make([]func(http.Handler) http.Handler, 0, 8)
	if h.cfg.TrustProxy {
		stages = append(stages, middleware.RealIP)
	}
	stages = append(stages,
		h.withTraceID,
		h.withErrorHandling,
		h.withRateLimit,
		h.withSecurityHeaders,
		h.withBodyParsing,
		h.withCORS,
		h.withLogging,
	)
	router.Use(stages...)

	// set before the routers are mounted so they inherit the fallbacks
	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/signin", handle(h.signIn))
		r.Post("/signup", handle(h.signUp))
		r.Get("/healthz", handle(h.healthz))
		r.Get("/version", h.getServerVersion)
	})

	router.Route("/users", func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/", handle(h.listUsers))
		r.Get("/me", handle(h.getCurrentUser))
		r.Patch("/me", handle(h.updateProfile))
		r.Patch("/me/avatar", handle(h.updateAvatar))
		r.Get("/{userId}", handle(h.getUser))
	})

	router.Route("/cards", func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/", handle(h.listCards))
		r.Post("/", handle(h.createCard))
		r.Delete("/{cardId}", handle(h.deleteCard))
		r.Put("/{cardId}/likes", handle(h.likeCard))
		r.Delete("/{cardId}/likes", handle(h.unlikeCard))
	})

	return router
}
