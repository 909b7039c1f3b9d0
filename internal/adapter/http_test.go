// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T, serverURL, token string) *httpContactsAPI {
	t.Helper()

	api, err := NewHTTPContactsAPI(config.ClientConfig{
		HTTPAddress:    serverURL,
		RequestTimeout: 5 * time.Second,
		Token:          token,
	}, logger.Nop())
	require.NoError(t, err)

	return api.(*httpContactsAPI)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "adds scheme", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "keeps https", raw: "https://api.example.com/", want: "https://api.example.com"},
		{name: "trims spaces", raw: "  http://srv:1  ", want: "http://srv:1"},
		{name: "empty", raw: "   ", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/users", r.URL.Path)
		assert.Empty(t, r.Header.Get(apiTokenHeader))

		var req models.RegisterUserRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "khannedy", req.Username)

		writeJSON(t, w, http.StatusOK, models.DataResponse[models.UserResponse]{
			Data: models.UserResponse{ID: 1, Username: req.Username, Name: req.Name},
		})
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL, "")
	got, err := api.Register(context.Background(), models.RegisterUserRequest{
		Username: "khannedy", Password: "rahasia", Name: "Eko",
	})

	require.NoError(t, err)
	assert.Equal(t, models.UserResponse{ID: 1, Username: "khannedy", Name: "Eko"}, got)
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, models.ErrorResponse{Errors: "username already registered"})
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL, "")
	_, err := api.Register(context.Background(), models.RegisterUserRequest{Username: "khannedy"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "username already registered")
}

func TestRegister_ValidationDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{
			Errors: "invalid data provided",
			Details: []models.FieldViolation{
				{Field: "username", Message: "is required"},
				{Field: "name", Message: "is required"},
			},
		})
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL, "")
	_, err := api.Register(context.Background(), models.RegisterUserRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "invalid data provided (username is required; name is required)")
}

func TestLogin_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/users/login":
			writeJSON(t, w, http.StatusOK, models.DataResponse[models.UserResponse]{
				Data: models.UserResponse{Username: "khannedy", Name: "Eko", Token: "tok-1"},
			})
		case "/api/users/me":
			assert.Equal(t, "tok-1", r.Header.Get(apiTokenHeader))
			writeJSON(t, w, http.StatusOK, models.DataResponse[models.UserResponse]{
				Data: models.UserResponse{Username: "khannedy", Name: "Eko"},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL, "")
	user, err := api.Login(context.Background(), models.LoginUserRequest{Username: "khannedy", Password: "rahasia"})
	require.NoError(t, err)
	assert.Equal(t, "tok-1", user.Token)
	assert.Equal(t, "tok-1", api.Token())

	me, err := api.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Eko", me.Name)
}

func TestLogin_WrongCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{Errors: "username or password is wrong"})
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL, "old")
	_, err := api.Login(context.Background(), models.LoginUserRequest{Username: "a", Password: "b"})

	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "old", api.Token())
}

func TestAuthenticatedCall_WithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not be sent without a token")
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL, "")

	_, err := api.Me(context.Background())
	assert.ErrorIs(t, err, ErrNoToken)

	err = api.DeleteContact(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNoToken)

	_, err = api.SearchContacts(context.Background(), models.SearchContactRequest{})
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestMe_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Errors: "unauthorized"})
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL, "expired")
	_, err := api.Me(context.Background())

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogout_ClearsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/users", r.URL.Path)
		assert.Equal(t, "tok", r.Header.Get(apiTokenHeader))
		writeJSON(t, w, http.StatusOK, models.DataResponse[string]{Data: models.OK})
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL, "tok")
	require.NoError(t, api.Logout(context.Background()))
	assert.Empty(t, api.Token())
}

func TestSearchContacts_SendsQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/contacts", r.URL.Path)

		q := r.URL.Query()
		assert.Equal(t, "es", q.Get("name"))
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "5", q.Get("perPage"))
		assert.False(t, q.Has("email"))
		assert.False(t, q.Has("phone"))

		writeJSON(t, w, http.StatusOK, models.Page[models.ContactResponse]{
			Data:   []models.ContactResponse{{ID: 6, FirstName: "Resi"}},
			Paging: models.Paging{Page: 2, PerPage: 5, TotalPages: 3},
		})
	}))
	defer srv.Close()

	name := "es"
	api := newTestAPI(t, srv.URL, "tok")
	page, err := api.SearchContacts(context.Background(), models.SearchContactRequest{Name: &name, Page: 2, PerPage: 5})

	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Resi", page.Data[0].FirstName)
	assert.Equal(t, models.Paging{Page: 2, PerPage: 5, TotalPages: 3}, page.Paging)
}

func TestGetContact_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/contacts/42", r.URL.Path)
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Errors: "contact is not found"})
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL, "tok")
	_, err := api.GetContact(context.Background(), 42)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "contact is not found")
}

func TestUpdateContact_UsesIDInPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/contacts/7", r.URL.Path)

		var req models.UpdateContactRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		writeJSON(t, w, http.StatusOK, models.DataResponse[models.ContactResponse]{
			Data: models.ContactResponse{ID: req.ID, FirstName: req.FirstName},
		})
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL, "tok")
	got, err := api.UpdateContact(context.Background(), models.UpdateContactRequest{ID: 7, FirstName: "Budi"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "Budi", got.FirstName)
}

func TestAddresses_Paths(t *testing.T) {
	var seen []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.Path)

		switch r.Method {
		case http.MethodGet:
			if r.URL.Path == "/api/contacts/3/addresses" {
				writeJSON(t, w, http.StatusOK, models.DataResponse[[]models.AddressResponse]{
					Data: []models.AddressResponse{{ID: 9, Country: "Indonesia", PostalCode: "12345"}},
				})
				return
			}
			writeJSON(t, w, http.StatusOK, models.DataResponse[models.AddressResponse]{
				Data: models.AddressResponse{ID: 9, Country: "Indonesia", PostalCode: "12345"},
			})
		case http.MethodDelete:
			writeJSON(t, w, http.StatusOK, models.DataResponse[string]{Data: models.OK})
		default:
			writeJSON(t, w, http.StatusOK, models.DataResponse[models.AddressResponse]{
				Data: models.AddressResponse{ID: 9, Country: "Indonesia", PostalCode: "12345"},
			})
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	api := newTestAPI(t, srv.URL, "tok")

	_, err := api.CreateAddress(ctx, models.CreateAddressRequest{ContactID: 3, Country: "Indonesia", PostalCode: "12345"})
	require.NoError(t, err)

	list, err := api.ListAddresses(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = api.GetAddress(ctx, models.GetAddressRequest{ContactID: 3, ID: 9})
	require.NoError(t, err)

	_, err = api.UpdateAddress(ctx, models.UpdateAddressRequest{ContactID: 3, ID: 9, Country: "Indonesia", PostalCode: "54321"})
	require.NoError(t, err)

	require.NoError(t, api.RemoveAddress(ctx, models.GetAddressRequest{ContactID: 3, ID: 9}))

	assert.Equal(t, []string{
		"POST /api/contacts/3/addresses",
		"GET /api/contacts/3/addresses",
		"GET /api/contacts/3/addresses/9",
		"PUT /api/contacts/3/addresses/9",
		"DELETE /api/contacts/3/addresses/9",
	}, seen)
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "1.2.3\n")
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL, "")
	got, err := api.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", got)
}

func TestUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, "maintenance")
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL, "")
	_, err := api.Version(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 503: maintenance")
}
