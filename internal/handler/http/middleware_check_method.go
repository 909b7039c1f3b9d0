// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-contacts/internal/app"
	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/models"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A request whose method is not served on a known path gets 404 and the
// usual JSON error envelope instead of chi's default 405.
//
// The lookup compares route patterns with the raw request path, so a
// parameterised route such as /api/contacts/{contactID} never matches and
// always ends in 404.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			writeNotFound(w, r)
			return
		}

		// the method is registered, delegate to the normal pipeline
		router.ServeHTTP(w, r)
	}
}

func writeNotFound(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Errors: app.MsgNotFound}, http.StatusNotFound)
}
