// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// StructValidator evaluates `validate` struct tags with go-playground
// validator and converts failures into [ValidationErrors].
type StructValidator struct {
	validate *validator.Validate
}

func NewStructValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	if err := v.RegisterValidation("maxbytes", maxBytes); err != nil {
		panic(fmt.Sprintf("validators: register maxbytes: %v", err))
	}

	return &StructValidator{validate: v}
}

// maxBytes limits the encoded length of a string, unlike max which counts
// runes. bcrypt accepts at most 72 bytes of password.
func maxBytes(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}

	return len(field.String()) <= limit
}

// Validate checks obj, which must be a struct or a pointer to one. When
// fields are given, only those fields (by JSON name) are checked.
func (v *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	typ, ok := structType(obj)
	if !ok {
		return ErrUnsupportedType
	}

	var err error
	if len(fields) > 0 {
		goNames, mapErr := goFieldNames(typ, fields)
		if mapErr != nil {
			return mapErr
		}
		err = v.validate.StructPartialCtx(ctx, obj, goNames...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}

	violations := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, newFieldViolation(fe))
	}

	return violations
}

func structType(obj any) (reflect.Type, bool) {
	if obj == nil {
		return nil, false
	}

	typ := reflect.TypeOf(obj)
	if typ.Kind() == reflect.Pointer {
		if reflect.ValueOf(obj).IsNil() {
			return nil, false
		}
		typ = typ.Elem()
	}

	return typ, typ.Kind() == reflect.Struct
}

// goFieldNames translates JSON field names to the Go field names expected by
// StructPartial.
func goFieldNames(typ reflect.Type, fields []string) ([]string, error) {
	byJSON := make(map[string]string, typ.NumField())
	for i := range typ.NumField() {
		f := typ.Field(i)
		byJSON[jsonFieldName(f)] = f.Name
	}

	names := make([]string, 0, len(fields))
	for _, field := range fields {
		name, ok := byJSON[field]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		names = append(names, name)
	}

	return names, nil
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	default:
		return name
	}
}
