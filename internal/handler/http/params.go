// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-contacts/internal/service"
	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/internal/validators"
	"github.com/MKhiriev/go-contacts/models"
	"github.com/go-chi/chi/v5"
)

const (
	contactIDParam = "contactID"
	addressIDParam = "addressID"
)

const msgNotANumber = "must be a number"

// invalidParams wraps violations the same way the service layer wraps
// validation failures, so both end up as 400 with details.
func invalidParams(violations validators.ValidationErrors) error {
	return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, violations)
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, invalidParams(validators.ValidationErrors{{Field: name, Message: msgNotANumber}})
	}
	return id, nil
}

func addressPathIDs(r *http.Request) (models.GetAddressRequest, error) {
	var violations validators.ValidationErrors

	contactID, err := strconv.ParseInt(chi.URLParam(r, contactIDParam), 10, 64)
	if err != nil {
		violations = append(violations, models.FieldViolation{Field: contactIDParam, Message: msgNotANumber})
	}
	addressID, err := strconv.ParseInt(chi.URLParam(r, addressIDParam), 10, 64)
	if err != nil {
		violations = append(violations, models.FieldViolation{Field: addressIDParam, Message: msgNotANumber})
	}

	if len(violations) > 0 {
		return models.GetAddressRequest{}, invalidParams(violations)
	}

	return models.GetAddressRequest{ID: addressID, ContactID: contactID}, nil
}

// searchRequest reads the search filters and paging from the query string.
// Blank filters are ignored and missing paging falls back to page 1 of 10.
func searchRequest(r *http.Request) (models.SearchContactRequest, error) {
	q := r.URL.Query()
	req := models.SearchContactRequest{
		Page:    models.DefaultPage,
		PerPage: models.DefaultPerPage,
	}

	if v := q.Get("name"); v != "" {
		req.Name = &v
	}
	if v := q.Get("email"); v != "" {
		req.Email = &v
	}
	if v := q.Get("phone"); v != "" {
		req.Phone = &v
	}

	var violations validators.ValidationErrors
	for _, p := range []struct {
		key string
		dst *int
	}{
		{"page", &req.Page},
		{"perPage", &req.PerPage},
	} {
		raw := q.Get(p.key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			violations = append(violations, models.FieldViolation{Field: p.key, Message: msgNotANumber})
			continue
		}
		*p.dst = n
	}

	if len(violations) > 0 {
		return models.SearchContactRequest{}, invalidParams(violations)
	}

	return req, nil
}

func decodeBody(r *http.Request, dst any) error {
	if err := utils.DecodeJSON(r, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}
	return nil
}

func currentUser(r *http.Request) (models.User, error) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		return models.User{}, ErrNoUserInContext
	}
	return user, nil
}
