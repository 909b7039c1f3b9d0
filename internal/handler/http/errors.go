// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrMalformedJSON wraps body decoding failures.
var ErrMalformedJSON = errors.New("malformed JSON body")

// ErrNoUserInContext is returned when a protected handler runs without the
// auth middleware having stored a user.
var ErrNoUserInContext = errors.New("no authenticated user in request context")
