// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-contacts/internal/app"
	"github.com/MKhiriev/go-contacts/internal/service"
	"github.com/MKhiriev/go-contacts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAddress_ContactIDFromPath(t *testing.T) {
	var got models.CreateAddressRequest
	router := newTestRouter(t, &service.Services{AddressService: &mockAddressService{
		createFn: func(_ context.Context, _ models.User, req models.CreateAddressRequest) (models.AddressResponse, error) {
			got = req
			return models.AddressResponse{ID: 3, Country: req.Country, PostalCode: req.PostalCode}, nil
		},
	}})

	rec := do(t, router, http.MethodPost, "/api/contacts/7/addresses",
		`{"contact_id":99,"country":"Indonesia","postal_code":"11111"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), got.ContactID)
	assert.Equal(t, int64(3), decodeResponse[models.DataResponse[models.AddressResponse]](t, rec).Data.ID)
}

func TestListAddresses_EmptyIsArray(t *testing.T) {
	router := newTestRouter(t, &service.Services{AddressService: &mockAddressService{
		listFn: func(context.Context, models.User, int64) ([]models.AddressResponse, error) {
			return []models.AddressResponse{}, nil
		},
	}})

	rec := do(t, router, http.MethodGet, "/api/contacts/7/addresses", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
}

func TestGetAddress(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantErrors string
	}{
		{name: "found", target: "/api/contacts/7/addresses/3", wantStatus: http.StatusOK},
		{name: "foreign contact", target: "/api/contacts/8/addresses/3", wantStatus: http.StatusNotFound, wantErrors: app.MsgContactNotFound},
		{name: "missing address", target: "/api/contacts/7/addresses/4", wantStatus: http.StatusNotFound, wantErrors: app.MsgAddressNotFound},
		{name: "non-numeric ids", target: "/api/contacts/x/addresses/y", wantStatus: http.StatusBadRequest, wantErrors: app.MsgInvalidDataProvided},
	}

	addresses := &mockAddressService{
		getFn: func(_ context.Context, _ models.User, req models.GetAddressRequest) (models.AddressResponse, error) {
			switch {
			case req.ContactID != 7:
				return models.AddressResponse{}, service.ErrContactNotFound
			case req.ID != 3:
				return models.AddressResponse{}, service.ErrAddressNotFound
			}
			return models.AddressResponse{ID: 3, Country: "Indonesia", PostalCode: "11111"}, nil
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t, &service.Services{AddressService: addresses})

			rec := do(t, router, http.MethodGet, tt.target, "")

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantErrors != "" {
				assert.Equal(t, tt.wantErrors, decodeResponse[models.ErrorResponse](t, rec).Errors)
			}
		})
	}
}

func TestGetAddress_BothIDsReported(t *testing.T) {
	router := newTestRouter(t, &service.Services{AddressService: &mockAddressService{}})

	rec := do(t, router, http.MethodGet, "/api/contacts/x/addresses/y", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, decodeResponse[models.ErrorResponse](t, rec).Details, 2)
}

func TestUpdateAddress_IDsFromPath(t *testing.T) {
	var got models.UpdateAddressRequest
	router := newTestRouter(t, &service.Services{AddressService: &mockAddressService{
		updateFn: func(_ context.Context, _ models.User, req models.UpdateAddressRequest) (models.AddressResponse, error) {
			got = req
			return models.AddressResponse{ID: req.ID, Country: req.Country, PostalCode: req.PostalCode}, nil
		},
	}})

	rec := do(t, router, http.MethodPut, "/api/contacts/7/addresses/3",
		`{"id":1,"contact_id":1,"country":"Malaysia","postal_code":"22222"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(3), got.ID)
	assert.Equal(t, int64(7), got.ContactID)
}

func TestRemoveAddress(t *testing.T) {
	var got models.GetAddressRequest
	router := newTestRouter(t, &service.Services{AddressService: &mockAddressService{
		removeFn: func(_ context.Context, _ models.User, req models.GetAddressRequest) error {
			got = req
			return nil
		},
	}})

	rec := do(t, router, http.MethodDelete, "/api/contacts/7/addresses/3", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":"OK"}`, rec.Body.String())
	assert.Equal(t, models.GetAddressRequest{ID: 3, ContactID: 7}, got)
}
