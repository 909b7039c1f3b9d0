// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the business rules of go-contacts: account
// registration and sessions, contacts owned by a user, and the addresses of
// those contacts. Every operation validates its request before touching
// storage, and every contact or address operation first proves that the
// caller owns the contact.
package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-contacts/models"
)

// CredentialService manages the single session token of a user.
type CredentialService interface {
	// IssueToken generates a fresh token for user and stores it, replacing
	// any previous one.
	IssueToken(ctx context.Context, user models.User) (string, error)

	// RevokeToken clears the stored token of user.
	RevokeToken(ctx context.Context, user models.User) error

	// Authenticate returns the user holding token or [ErrUnauthenticated].
	Authenticate(ctx context.Context, token string) (models.User, error)
}

type UserService interface {
	Register(ctx context.Context, req models.RegisterUserRequest) (models.UserResponse, error)
	Login(ctx context.Context, req models.LoginUserRequest) (models.UserResponse, error)
	GetMe(ctx context.Context, user models.User) models.UserResponse
	Update(ctx context.Context, user models.User, req models.UpdateUserRequest) (models.UserResponse, error)
	Logout(ctx context.Context, user models.User) error
}

// ContactOwnershipVerifier is the only gate deciding whether a contact id is
// visible to a user.
type ContactOwnershipVerifier interface {
	// CheckContactExists returns the contact when it exists and belongs to
	// user, and [ErrContactNotFound] otherwise.
	CheckContactExists(ctx context.Context, user models.User, contactID int64) (models.Contact, error)
}

type ContactService interface {
	ContactOwnershipVerifier

	Create(ctx context.Context, user models.User, req models.CreateContactRequest) (models.ContactResponse, error)
	Get(ctx context.Context, user models.User, contactID int64) (models.ContactResponse, error)
	Update(ctx context.Context, user models.User, req models.UpdateContactRequest) (models.ContactResponse, error)
	Delete(ctx context.Context, user models.User, contactID int64) error
	Search(ctx context.Context, user models.User, req models.SearchContactRequest) (models.Page[models.ContactResponse], error)
}

type AddressService interface {
	// CheckAddressExists returns the address when it belongs to contactID,
	// and [ErrAddressNotFound] otherwise. Contact ownership is not checked.
	CheckAddressExists(ctx context.Context, contactID, addressID int64) (models.Address, error)

	Create(ctx context.Context, user models.User, req models.CreateAddressRequest) (models.AddressResponse, error)
	Get(ctx context.Context, user models.User, req models.GetAddressRequest) (models.AddressResponse, error)
	Update(ctx context.Context, user models.User, req models.UpdateAddressRequest) (models.AddressResponse, error)
	Remove(ctx context.Context, user models.User, req models.GetAddressRequest) error
	List(ctx context.Context, user models.User, contactID int64) ([]models.AddressResponse, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
