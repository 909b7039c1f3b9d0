// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/service"
	"github.com/MKhiriev/go-contacts/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Function-field service mocks
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

type mockCredentialService struct {
	issueTokenFn   func(ctx context.Context, user models.User) (string, error)
	revokeTokenFn  func(ctx context.Context, user models.User) error
	authenticateFn func(ctx context.Context, token string) (models.User, error)
}

func (m *mockCredentialService) IssueToken(ctx context.Context, user models.User) (string, error) {
	return m.issueTokenFn(ctx, user)
}

func (m *mockCredentialService) RevokeToken(ctx context.Context, user models.User) error {
	return m.revokeTokenFn(ctx, user)
}

func (m *mockCredentialService) Authenticate(ctx context.Context, token string) (models.User, error) {
	return m.authenticateFn(ctx, token)
}

type mockUserService struct {
	registerFn func(ctx context.Context, req models.RegisterUserRequest) (models.UserResponse, error)
	loginFn    func(ctx context.Context, req models.LoginUserRequest) (models.UserResponse, error)
	updateFn   func(ctx context.Context, user models.User, req models.UpdateUserRequest) (models.UserResponse, error)
	logoutFn   func(ctx context.Context, user models.User) error
}

func (m *mockUserService) Register(ctx context.Context, req models.RegisterUserRequest) (models.UserResponse, error) {
	return m.registerFn(ctx, req)
}

func (m *mockUserService) Login(ctx context.Context, req models.LoginUserRequest) (models.UserResponse, error) {
	return m.loginFn(ctx, req)
}

func (m *mockUserService) GetMe(_ context.Context, user models.User) models.UserResponse {
	return user.Response()
}

func (m *mockUserService) Update(ctx context.Context, user models.User, req models.UpdateUserRequest) (models.UserResponse, error) {
	return m.updateFn(ctx, user, req)
}

func (m *mockUserService) Logout(ctx context.Context, user models.User) error {
	return m.logoutFn(ctx, user)
}

type mockContactService struct {
	checkFn  func(ctx context.Context, user models.User, contactID int64) (models.Contact, error)
	createFn func(ctx context.Context, user models.User, req models.CreateContactRequest) (models.ContactResponse, error)
	getFn    func(ctx context.Context, user models.User, contactID int64) (models.ContactResponse, error)
	updateFn func(ctx context.Context, user models.User, req models.UpdateContactRequest) (models.ContactResponse, error)
	deleteFn func(ctx context.Context, user models.User, contactID int64) error
	searchFn func(ctx context.Context, user models.User, req models.SearchContactRequest) (models.Page[models.ContactResponse], error)
}

func (m *mockContactService) CheckContactExists(ctx context.Context, user models.User, contactID int64) (models.Contact, error) {
	return m.checkFn(ctx, user, contactID)
}

func (m *mockContactService) Create(ctx context.Context, user models.User, req models.CreateContactRequest) (models.ContactResponse, error) {
	return m.createFn(ctx, user, req)
}

func (m *mockContactService) Get(ctx context.Context, user models.User, contactID int64) (models.ContactResponse, error) {
	return m.getFn(ctx, user, contactID)
}

func (m *mockContactService) Update(ctx context.Context, user models.User, req models.UpdateContactRequest) (models.ContactResponse, error) {
	return m.updateFn(ctx, user, req)
}

func (m *mockContactService) Delete(ctx context.Context, user models.User, contactID int64) error {
	return m.deleteFn(ctx, user, contactID)
}

func (m *mockContactService) Search(ctx context.Context, user models.User, req models.SearchContactRequest) (models.Page[models.ContactResponse], error) {
	return m.searchFn(ctx, user, req)
}

type mockAddressService struct {
	checkFn  func(ctx context.Context, contactID, addressID int64) (models.Address, error)
	createFn func(ctx context.Context, user models.User, req models.CreateAddressRequest) (models.AddressResponse, error)
	getFn    func(ctx context.Context, user models.User, req models.GetAddressRequest) (models.AddressResponse, error)
	updateFn func(ctx context.Context, user models.User, req models.UpdateAddressRequest) (models.AddressResponse, error)
	removeFn func(ctx context.Context, user models.User, req models.GetAddressRequest) error
	listFn   func(ctx context.Context, user models.User, contactID int64) ([]models.AddressResponse, error)
}

func (m *mockAddressService) CheckAddressExists(ctx context.Context, contactID, addressID int64) (models.Address, error) {
	return m.checkFn(ctx, contactID, addressID)
}

func (m *mockAddressService) Create(ctx context.Context, user models.User, req models.CreateAddressRequest) (models.AddressResponse, error) {
	return m.createFn(ctx, user, req)
}

func (m *mockAddressService) Get(ctx context.Context, user models.User, req models.GetAddressRequest) (models.AddressResponse, error) {
	return m.getFn(ctx, user, req)
}

func (m *mockAddressService) Update(ctx context.Context, user models.User, req models.UpdateAddressRequest) (models.AddressResponse, error) {
	return m.updateFn(ctx, user, req)
}

func (m *mockAddressService) Remove(ctx context.Context, user models.User, req models.GetAddressRequest) error {
	return m.removeFn(ctx, user, req)
}

func (m *mockAddressService) List(ctx context.Context, user models.User, contactID int64) ([]models.AddressResponse, error) {
	return m.listFn(ctx, user, contactID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testToken = "test-token"

var testUser = models.User{ID: 1, Username: "khannedy", Name: "Eko"}

// authenticatedAs returns a credential mock accepting testToken only.
func authenticatedAs(user models.User) *mockCredentialService {
	return &mockCredentialService{
		authenticateFn: func(_ context.Context, token string) (models.User, error) {
			if token != testToken {
				return models.User{}, service.ErrUnauthenticated
			}
			return user, nil
		},
	}
}

// newTestRouter builds the full router around svcs. CredentialService and
// AppInfoService get defaults when left nil.
func newTestRouter(t *testing.T, svcs *service.Services) http.Handler {
	t.Helper()

	if svcs.CredentialService == nil {
		svcs.CredentialService = authenticatedAs(testUser)
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}

	return NewHandler(svcs, config.Server{AllowedOrigins: []string{"*"}}, logger.Nop()).Init()
}

// do sends a request with an optional JSON body and the test token.
func do(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiTokenHeader, testToken)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func decodeResponse[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())

	return out
}
