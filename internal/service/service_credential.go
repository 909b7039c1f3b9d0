// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-contacts/internal/crypto"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/store"
	"github.com/MKhiriev/go-contacts/models"
)

// credentialService keeps at most one opaque session token per user in the
// users table. Tokens do not expire; they live until logout or the next
// login.
type credentialService struct {
	// userRepository stores and looks up tokens.
	userRepository store.UserRepository

	// tokens generates new session tokens.
	tokens crypto.TokenGenerator

	logger *logger.Logger
}

func NewCredentialService(userRepository store.UserRepository, tokens crypto.TokenGenerator, logger *logger.Logger) CredentialService {
	return &credentialService{
		userRepository: userRepository,
		tokens:         tokens,
		logger:         logger,
	}
}

func (s *credentialService) IssueToken(ctx context.Context, user models.User) (string, error) {
	log := logger.FromContext(ctx)

	token, err := s.tokens.Generate()
	if err != nil {
		log.Err(err).Str("func", "*credentialService.IssueToken").Msg("failed to generate token")
		return "", err
	}

	if err = s.userRepository.SetToken(ctx, user.Username, &token); err != nil {
		log.Err(err).Str("func", "*credentialService.IssueToken").Str("username", user.Username).Msg("failed to store token")
		return "", fmt.Errorf("failed to store token: %w", err)
	}

	return token, nil
}

func (s *credentialService) RevokeToken(ctx context.Context, user models.User) error {
	err := s.userRepository.SetToken(ctx, user.Username, nil)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		// the account vanished between authentication and logout
		return ErrUnauthenticated
	case err != nil:
		logger.FromContext(ctx).Err(err).
			Str("func", "*credentialService.RevokeToken").
			Str("username", user.Username).
			Msg("failed to revoke token")
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}

func (s *credentialService) Authenticate(ctx context.Context, token string) (models.User, error) {
	if strings.TrimSpace(token) == "" {
		return models.User{}, ErrUnauthenticated
	}

	user, err := s.userRepository.FindUserByToken(ctx, token)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return models.User{}, ErrUnauthenticated
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*credentialService.Authenticate").Msg("failed to look up token")
		return models.User{}, fmt.Errorf("failed to look up token: %w", err)
	}

	return user, nil
}
