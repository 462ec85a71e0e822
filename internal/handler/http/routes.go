// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/account/register", h.register)
		r.Post("/api/account/login", h.login)
		r.Post("/api/account/logout", h.logout)
		r.Get("/api/account/session", h.currentSession)

		r.Post("/api/calculator/bmi", h.calculateBMI)
		r.Post("/api/calculator/body-fat", h.calculateBodyFat)
		r.Post("/api/calculator/calories", h.calculateCalories)

		r.Get("/api/version", h.getServerVersion)
		r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	})

	// routes with bearer authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Put("/api/account/password", h.changePassword)
		r.Get("/api/calculator/profile", h.profileMetrics)
	})

	// routes with admin key
	router.Group(func(r chi.Router) {
		r.Use(h.adminOnly)

		r.Get("/api/admin/accounts", h.listAccounts)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
