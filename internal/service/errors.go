// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidDataProvided wraps the [validators.ValidationErrors] of a
	// rejected request.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongCredentials is returned by login for an unknown username and
	// for a wrong password alike.
	ErrWrongCredentials = errors.New("username or password is wrong")

	// ErrUnauthenticated is returned when a session token is missing or does
	// not belong to any user.
	ErrUnauthenticated = errors.New("unauthorized")

	ErrUsernameAlreadyExists = errors.New("username already registered")
	ErrContactNotFound       = errors.New("contact is not found")
	ErrAddressNotFound       = errors.New("address is not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
