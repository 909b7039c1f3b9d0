// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-contacts/models"
)

func (h *Handler) createAddress(w http.ResponseWriter, r *http.Request) {
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

	var req models.CreateAddressRequest
	if err = decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	req.ContactID = contactID

	address, err := h.services.AddressService.Create(r.Context(), user, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, address)
}

func (h *Handler) listAddresses(w http.ResponseWriter, r *http.Request) {
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

	addresses, err := h.services.AddressService.List(r.Context(), user, contactID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, addresses)
}

func (h *Handler) getAddress(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	req, err := addressPathIDs(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	address, err := h.services.AddressService.Get(r.Context(), user, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, address)
}

func (h *Handler) updateAddress(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	ids, err := addressPathIDs(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.UpdateAddressRequest
	if err = decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	req.ID, req.ContactID = ids.ID, ids.ContactID

	address, err := h.services.AddressService.Update(r.Context(), user, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, address)
}

func (h *Handler) removeAddress(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	req, err := addressPathIDs(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.AddressService.Remove(r.Context(), user, req); err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, models.OK)
}
