// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-contacts/models"
)

func newFieldViolation(fe validator.FieldError) models.FieldViolation {
	return models.FieldViolation{
		Field:   fe.Field(),
		Message: violationMessage(fe),
	}
}

func violationMessage(fe validator.FieldError) string {
	isText := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if isText {
			return fmt.Sprintf("must contain at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "max":
		if isText {
			return fmt.Sprintf("must contain at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "maxbytes":
		return fmt.Sprintf("must contain at most %s bytes", fe.Param())
	default:
		return fmt.Sprintf("failed the %q rule", fe.Tag())
	}
}
