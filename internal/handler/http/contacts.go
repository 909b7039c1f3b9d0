// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/models"
)

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.CreateContactRequest
	if err = decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	contact, err := h.services.ContactService.Create(r.Context(), user, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("contact_id", contact.ID).Msg("contact created")
	writeData(w, r, contact)
}

// searchContacts answers with the page envelope directly, not wrapped in
// data.
func (h *Handler) searchContacts(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	req, err := searchRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.ContactService.Search(r.Context(), user, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, page, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.searchContacts").Msg("failed to write response")
	}
}

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	contactID, err := pathID(r, contactIDParam)
	if err != nil {
		writeError(w, r, err)
		return
	}

	contact, err := h.services.ContactService.Get(r.Context(), user, contactID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, contact)
}

func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	contactID, err := pathID(r, contactIDParam)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.UpdateContactRequest
	if err = decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	req.ID = contactID

	contact, err := h.services.ContactService.Update(r.Context(), user, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, contact)
}

func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	contactID, err := pathID(r, contactIDParam)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ContactService.Delete(r.Context(), user, contactID); err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, models.OK)
}
