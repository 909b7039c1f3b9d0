// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/validators"
)

// validate runs v on req and wraps any violations in [ErrInvalidDataProvided].
func validate(ctx context.Context, v validators.Validator, funcName string, req any) error {
	if err := v.Validate(ctx, req); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", funcName).Msg("request rejected by validation")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return nil
}
