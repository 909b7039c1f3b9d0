// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/service"
	"github.com/MKhiriev/go-contacts/internal/utils"
)

// auth resolves the X-API-TOKEN header to a user through
// [service.CredentialService.Authenticate]. A missing or unknown token ends
// the request with 401 before any handler runs. On success the user is
// stored under [utils.UserCtxKey] and the request logger gains a username
// field.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimSpace(r.Header.Get(apiTokenHeader))
		if token == "" {
			logger.FromRequest(r).Debug().Str("func", "*Handler.auth").Msg("request without api token")
			writeError(w, r, service.ErrUnauthenticated)
			return
		}

		ctx := r.Context()
		user, err := h.services.CredentialService.Authenticate(ctx, token)
		if err != nil {
			writeError(w, r, err)
			return
		}

		l := logger.FromRequest(r).WithField("username", user.Username)

		ctx = context.WithValue(l.WithContext(ctx), utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
