// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DataResponse is the success envelope of every JSON endpoint except search,
// which answers with a [Page].
type DataResponse[T any] struct {
	Data T `json:"data"`
}

// ErrorResponse is the error envelope. Details is filled for validation
// failures only.
type ErrorResponse struct {
	Errors  string           `json:"errors"`
	Details []FieldViolation `json:"details,omitempty"`
}

// FieldViolation describes a single failed field constraint.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// OK is the data payload of operations that return no entity.
const OK = "OK"
