// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the PostgreSQL persistence of go-contacts: users
// with their session tokens, contacts scoped to an owning username, and the
// addresses of each contact.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-contacts/models"
)

// UserRepository persists user accounts and their single session token.
type UserRepository interface {
	// CreateUser inserts user and returns the stored row.
	// A taken username yields [ErrUsernameAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the user with the given username or
	// [ErrUserNotFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByToken returns the user currently holding token or
	// [ErrUserNotFound].
	FindUserByToken(ctx context.Context, token string) (models.User, error)

	// UpdateUser overwrites name and password of the user identified by
	// user.Username and returns the stored row.
	UpdateUser(ctx context.Context, user models.User) (models.User, error)

	// SetToken stores token for username. A nil token clears the session.
	SetToken(ctx context.Context, username string, token *string) error
}

// ContactRepository persists contacts. Every method is scoped to the owning
// username, so a contact of another user is indistinguishable from a
// missing one.
type ContactRepository interface {
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	FindContact(ctx context.Context, username string, contactID int64) (models.Contact, error)
	UpdateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	DeleteContact(ctx context.Context, username string, contactID int64) error

	// SearchContacts returns one page of the owner's contacts matching every
	// filter set in req, ordered by id.
	SearchContacts(ctx context.Context, username string, req models.SearchContactRequest) ([]models.Contact, error)

	// CountContacts returns how many of the owner's contacts match req,
	// ignoring paging.
	CountContacts(ctx context.Context, username string, req models.SearchContactRequest) (int64, error)
}

// AddressRepository persists addresses. Every method is scoped to the parent
// contact id; ownership of the contact is checked by the caller.
type AddressRepository interface {
	CreateAddress(ctx context.Context, address models.Address) (models.Address, error)
	FindAddress(ctx context.Context, contactID, addressID int64) (models.Address, error)
	UpdateAddress(ctx context.Context, address models.Address) (models.Address, error)
	DeleteAddress(ctx context.Context, contactID, addressID int64) error
	ListAddresses(ctx context.Context, contactID int64) ([]models.Address, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
