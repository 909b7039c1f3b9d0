// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterUserRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("username", user.Username).Msg("user registered")
	writeData(w, r, user)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginUserRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("username", user.Username).Msg("user successfully logged in")
	writeData(w, r, user)
}

func (h *Handler) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, h.services.UserService.GetMe(r.Context(), user))
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.UpdateUserRequest
	if err = decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.UserService.Update(r.Context(), user, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, updated)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.UserService.Logout(r.Context(), user); err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, models.OK)
}
