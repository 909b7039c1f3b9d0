// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-contacts server handlers and middleware.
//
// All Msg* constants are human-readable strings written into the "errors"
// field of HTTP error responses. Keeping them in one place keeps the wording
// consistent throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when a request fails validation.
	// The individual violations are listed under "details".
	MsgInvalidDataProvided = "invalid data provided"

	// MsgMalformedJSON is returned when the request body is not valid JSON.
	MsgMalformedJSON = "malformed JSON body"

	// MsgWrongCredentials is returned by login for an unknown username and a
	// wrong password alike.
	MsgWrongCredentials = "username or password is wrong"

	MsgUnauthorized = "unauthorized"

	MsgUsernameAlreadyExists = "username already registered"

	MsgNotFound        = "not found"
	MsgContactNotFound = "contact is not found"
	MsgAddressNotFound = "address is not found"

	// MsgInternalServerError hides every unexpected failure from the client.
	MsgInternalServerError = "internal server error"
)
