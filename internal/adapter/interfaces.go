// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the Go client of the go-contacts REST API.
//
// [ContactsAPI] mirrors every server endpoint. Non-2xx answers are mapped by
// mapHTTPError to the sentinel errors in errors.go, so callers can use
// [errors.Is] (for example [ErrNotFound] for 404 or [ErrUnauthorized] for
// 401) without looking at status codes.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-contacts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ContactsAPI talks to a go-contacts server. Authenticated calls send the
// token set with SetToken (or obtained by Login) in the X-API-TOKEN header.
type ContactsAPI interface {
	// SetToken stores the session token used by authenticated calls.
	SetToken(token string)

	// Token returns the stored session token, empty when there is none.
	Token() string

	Register(ctx context.Context, req models.RegisterUserRequest) (models.UserResponse, error)

	// Login stores the returned session token via SetToken.
	Login(ctx context.Context, req models.LoginUserRequest) (models.UserResponse, error)

	Me(ctx context.Context) (models.UserResponse, error)
	UpdateUser(ctx context.Context, req models.UpdateUserRequest) (models.UserResponse, error)

	// Logout revokes the session on the server and forgets the local token.
	Logout(ctx context.Context) error

	CreateContact(ctx context.Context, req models.CreateContactRequest) (models.ContactResponse, error)
	SearchContacts(ctx context.Context, req models.SearchContactRequest) (models.Page[models.ContactResponse], error)
	GetContact(ctx context.Context, contactID int64) (models.ContactResponse, error)
	UpdateContact(ctx context.Context, req models.UpdateContactRequest) (models.ContactResponse, error)
	DeleteContact(ctx context.Context, contactID int64) error

	CreateAddress(ctx context.Context, req models.CreateAddressRequest) (models.AddressResponse, error)
	ListAddresses(ctx context.Context, contactID int64) ([]models.AddressResponse, error)
	GetAddress(ctx context.Context, req models.GetAddressRequest) (models.AddressResponse, error)
	UpdateAddress(ctx context.Context, req models.UpdateAddressRequest) (models.AddressResponse, error)
	RemoveAddress(ctx context.Context, req models.GetAddressRequest) error

	// Version returns the server version reported by GET /api/version.
	Version(ctx context.Context) (string, error)
}
