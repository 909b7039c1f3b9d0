// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const apiTokenHeader = "X-API-TOKEN"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.allowedOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Encoding", apiTokenHeader, traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/users", h.register)
		r.Post("/api/users/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/users/me", h.getCurrentUser)
		r.Put("/api/users", h.updateUser)
		r.Delete("/api/users", h.logout)

		r.Post("/api/contacts", h.createContact)
		r.Get("/api/contacts", h.searchContacts)
		r.Get("/api/contacts/{contactID}", h.getContact)
		r.Put("/api/contacts/{contactID}", h.updateContact)
		r.Delete("/api/contacts/{contactID}", h.deleteContact)

		r.Post("/api/contacts/{contactID}/addresses", h.createAddress)
		r.Get("/api/contacts/{contactID}/addresses", h.listAddresses)
		r.Get("/api/contacts/{contactID}/addresses/{addressID}", h.getAddress)
		r.Put("/api/contacts/{contactID}/addresses/{addressID}", h.updateAddress)
		r.Delete("/api/contacts/{contactID}/addresses/{addressID}", h.removeAddress)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) allowedOrigins() []string {
	if len(h.cfg.AllowedOrigins) == 0 {
		return []string{"*"}
	}
	return h.cfg.AllowedOrigins
}
