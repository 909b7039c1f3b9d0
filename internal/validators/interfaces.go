// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the request types of the
// go-contacts API.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - ValidationErrors: the aggregated list of field violations returned
//     when a value breaks one or more rules.
//
// Rules are declared as `validate:"..."` struct tags on the request models
// and evaluated by github.com/go-playground/validator/v10. Violations are
// reported under the JSON names of the offending fields.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields (JSON names).
	Validate(context.Context, any, ...string) error
}
