// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"github.com/google/uuid"
)

// uuidTokenGenerator issues random (version 4) UUIDs as session tokens.
type uuidTokenGenerator struct{}

func NewTokenGenerator() TokenGenerator {
	return uuidTokenGenerator{}
}

func (uuidTokenGenerator) Generate() (string, error) {
	token, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("error generating token: %w", err)
	}

	return token.String(), nil
}
