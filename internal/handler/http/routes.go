// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/vera-node/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(routeNotFound)

	if h.metrics != nil {
		router.Handle("/metrics", h.metrics.Handler())
	}

	router.Route("/api", func(r chi.Router) {
		// the event feed is hijacked, so it stays outside compression and the timeout
		if h.events != nil {
			r.Get("/events", h.events.ServeHTTP)
		}

		r.Group(func(r chi.Router) {
			if h.requestTimeout > 0 {
				r.Use(middleware.Timeout(h.requestTimeout))
			}
			r.Use(middleware.Compress(5, "application/json", "text/plain"))

			r.Get("/version", h.getServerVersion)

			r.Route("/auth", func(r chi.Router) {
				r.Post("/register", h.register)
				r.Post("/login", h.login)
				r.Post("/recover", h.recover)
				r.With(h.auth, requireRole(models.RoleUser)).Get("/profile", h.profile)
			})

			r.Route("/rumors", func(r chi.Router) {
				r.Get("/", h.listRumors)
				r.Get("/{rumorID}", h.getRumor)
				r.Get("/{rumorID}/stats", h.getRumorStats)

				r.Group(func(r chi.Router) {
					r.Use(h.auth, requireRole(models.RoleUser))
					r.Post("/", h.createRumor)
					r.Post("/validate", h.validateContent)
					r.Post("/{rumorID}/vote", h.castVote)
					r.Get("/{rumorID}/vote-status", h.voteStatus)
				})
			})

			r.Route("/user", func(r chi.Router) {
				r.Use(h.auth, requireRole(models.RoleUser))
				r.Get("/stats", h.userStats)
				r.Get("/rumors", h.userRumors)
			})

			r.Get("/ledger/blocks", h.listBlocks)

			r.Route("/admin", func(r chi.Router) {
				r.Post("/login", h.adminLogin)

				r.Group(func(r chi.Router) {
					r.Use(h.auth, requireRole(models.RoleAdmin))
					r.Get("/dashboard/stats", h.adminStats)
					r.Get("/dashboard/blocked-users", h.blockedUsers)
					r.Post("/dashboard/unblock-user", h.unblockUser)
					r.Get("/ledger/verify", h.verifyLedger)
				})
			})
		})
	})

	return router
}
