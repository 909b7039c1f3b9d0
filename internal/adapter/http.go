// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/models"
	"github.com/go-resty/resty/v2"
)

const apiTokenHeader = "X-API-TOKEN"

const (
	usersPath     = "/api/users"
	loginPath     = "/api/users/login"
	mePath        = "/api/users/me"
	contactsPath  = "/api/contacts"
	contactPath   = "/api/contacts/{contactID}"
	addressesPath = "/api/contacts/{contactID}/addresses"
	addressPath   = "/api/contacts/{contactID}/addresses/{addressID}"
	versionPath   = "/api/version"
)

type httpContactsAPI struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPContactsAPI builds a [ContactsAPI] for the server at
// cfg.HTTPAddress. A missing scheme defaults to http. cfg.Token, when set,
// is used for authenticated calls.
func NewHTTPContactsAPI(cfg config.ClientConfig, logger *logger.Logger) (ContactsAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	api := &httpContactsAPI{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	api.SetToken(cfg.Token)

	return api, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpContactsAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpContactsAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpContactsAPI) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

func (h *httpContactsAPI) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}
	return h.request(ctx).SetHeader(apiTokenHeader, token), nil
}

// execute sends req and unwraps the data envelope of a successful answer.
func execute[T any](req *resty.Request, method, path string) (T, error) {
	var out models.DataResponse[T]

	resp, err := req.SetResult(&out).Execute(method, path)
	if err != nil {
		return out.Data, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return out.Data, err
	}

	return out.Data, nil
}

func executeAuthed[T any](h *httpContactsAPI, ctx context.Context, method, path string, prepare func(*resty.Request)) (T, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	if prepare != nil {
		prepare(req)
	}
	return execute[T](req, method, path)
}

func contactParams(contactID int64) map[string]string {
	return map[string]string{"contactID": strconv.FormatInt(contactID, 10)}
}

func addressParams(contactID, addressID int64) map[string]string {
	return map[string]string{
		"contactID": strconv.FormatInt(contactID, 10),
		"addressID": strconv.FormatInt(addressID, 10),
	}
}

func (h *httpContactsAPI) Register(ctx context.Context, req models.RegisterUserRequest) (models.UserResponse, error) {
	return execute[models.UserResponse](h.request(ctx).SetBody(req), http.MethodPost, usersPath)
}

func (h *httpContactsAPI) Login(ctx context.Context, req models.LoginUserRequest) (models.UserResponse, error) {
	user, err := execute[models.UserResponse](h.request(ctx).SetBody(req), http.MethodPost, loginPath)
	if err != nil {
		return models.UserResponse{}, err
	}

	h.SetToken(user.Token)
	h.logger.Debug().Str("func", "*httpContactsAPI.Login").Str("username", user.Username).Msg("logged in")

	return user, nil
}

func (h *httpContactsAPI) Me(ctx context.Context) (models.UserResponse, error) {
	return executeAuthed[models.UserResponse](h, ctx, http.MethodGet, mePath, nil)
}

func (h *httpContactsAPI) UpdateUser(ctx context.Context, req models.UpdateUserRequest) (models.UserResponse, error) {
	return executeAuthed[models.UserResponse](h, ctx, http.MethodPut, usersPath, func(r *resty.Request) {
		r.SetBody(req)
	})
}

func (h *httpContactsAPI) Logout(ctx context.Context) error {
	if _, err := executeAuthed[string](h, ctx, http.MethodDelete, usersPath, nil); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpContactsAPI) CreateContact(ctx context.Context, req models.CreateContactRequest) (models.ContactResponse, error) {
	return executeAuthed[models.ContactResponse](h, ctx, http.MethodPost, contactsPath, func(r *resty.Request) {
		r.SetBody(req)
	})
}

// SearchContacts answers with the page envelope, which is not wrapped in
// data, so it bypasses execute.
func (h *httpContactsAPI) SearchContacts(ctx context.Context, req models.SearchContactRequest) (models.Page[models.ContactResponse], error) {
	var page models.Page[models.ContactResponse]

	r, err := h.authedRequest(ctx)
	if err != nil {
		return page, err
	}

	query := url.Values{}
	if req.Name != nil {
		query.Set("name", *req.Name)
	}
	if req.Email != nil {
		query.Set("email", *req.Email)
	}
	if req.Phone != nil {
		query.Set("phone", *req.Phone)
	}
	if req.Page > 0 {
		query.Set("page", strconv.Itoa(req.Page))
	}
	if req.PerPage > 0 {
		query.Set("perPage", strconv.Itoa(req.PerPage))
	}

	resp, err := r.SetQueryParamsFromValues(query).SetResult(&page).Get(contactsPath)
	if err != nil {
		return page, fmt.Errorf("GET %s: %w", contactsPath, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return page, err
	}

	return page, nil
}

func (h *httpContactsAPI) GetContact(ctx context.Context, contactID int64) (models.ContactResponse, error) {
	return executeAuthed[models.ContactResponse](h, ctx, http.MethodGet, contactPath, func(r *resty.Request) {
		r.SetPathParams(contactParams(contactID))
	})
}

func (h *httpContactsAPI) UpdateContact(ctx context.Context, req models.UpdateContactRequest) (models.ContactResponse, error) {
	return executeAuthed[models.ContactResponse](h, ctx, http.MethodPut, contactPath, func(r *resty.Request) {
		r.SetPathParams(contactParams(req.ID)).SetBody(req)
	})
}

func (h *httpContactsAPI) DeleteContact(ctx context.Context, contactID int64) error {
	_, err := executeAuthed[string](h, ctx, http.MethodDelete, contactPath, func(r *resty.Request) {
		r.SetPathParams(contactParams(contactID))
	})
	return err
}

func (h *httpContactsAPI) CreateAddress(ctx context.Context, req models.CreateAddressRequest) (models.AddressResponse, error) {
	return executeAuthed[models.AddressResponse](h, ctx, http.MethodPost, addressesPath, func(r *resty.Request) {
		r.SetPathParams(contactParams(req.ContactID)).SetBody(req)
	})
}

func (h *httpContactsAPI) ListAddresses(ctx context.Context, contactID int64) ([]models.AddressResponse, error) {
	return executeAuthed[[]models.AddressResponse](h, ctx, http.MethodGet, addressesPath, func(r *resty.Request) {
		r.SetPathParams(contactParams(contactID))
	})
}

func (h *httpContactsAPI) GetAddress(ctx context.Context, req models.GetAddressRequest) (models.AddressResponse, error) {
	return executeAuthed[models.AddressResponse](h, ctx, http.MethodGet, addressPath, func(r *resty.Request) {
		r.SetPathParams(addressParams(req.ContactID, req.ID))
	})
}

func (h *httpContactsAPI) UpdateAddress(ctx context.Context, req models.UpdateAddressRequest) (models.AddressResponse, error) {
	return executeAuthed[models.AddressResponse](h, ctx, http.MethodPut, addressPath, func(r *resty.Request) {
		r.SetPathParams(addressParams(req.ContactID, req.ID)).SetBody(req)
	})
}

func (h *httpContactsAPI) RemoveAddress(ctx context.Context, req models.GetAddressRequest) error {
	_, err := executeAuthed[string](h, ctx, http.MethodDelete, addressPath, func(r *resty.Request) {
		r.SetPathParams(addressParams(req.ContactID, req.ID))
	})
	return err
}

func (h *httpContactsAPI) Version(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).SetHeader("Accept", "text/plain").Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("GET %s: %w", versionPath, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
