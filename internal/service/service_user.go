// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contacts/internal/crypto"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/store"
	"github.com/MKhiriev/go-contacts/internal/validators"
	"github.com/MKhiriev/go-contacts/models"
)

// userService handles registration, login, profile reads and updates, and
// logout.
type userService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// credentials issues and revokes session tokens.
	credentials CredentialService

	// hasher hashes passwords at registration and update and verifies them
	// at login.
	hasher crypto.PasswordHasher

	validator validators.Validator
	logger    *logger.Logger
}

func NewUserService(
	userRepository store.UserRepository,
	credentials CredentialService,
	hasher crypto.PasswordHasher,
	validator validators.Validator,
	logger *logger.Logger,
) UserService {
	return &userService{
		userRepository: userRepository,
		credentials:    credentials,
		hasher:         hasher,
		validator:      validator,
		logger:         logger,
	}
}

// Register creates an account. The response carries no token; the user has
// to log in afterwards.
func (s *userService) Register(ctx context.Context, req models.RegisterUserRequest) (models.UserResponse, error) {
	log := logger.FromContext(ctx)

	if err := validate(ctx, s.validator, "*userService.Register", req); err != nil {
		return models.UserResponse{}, err
	}

	hash, err := s.hashPassword(ctx, "*userService.Register", req.Password)
	if err != nil {
		return models.UserResponse{}, err
	}

	created, err := s.userRepository.CreateUser(ctx, models.User{
		Username: req.Username,
		Name:     req.Name,
		Password: hash,
	})
	switch {
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		log.Info().Str("func", "*userService.Register").Str("username", req.Username).Msg("username already taken")
		return models.UserResponse{}, ErrUsernameAlreadyExists
	case err != nil:
		return models.UserResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created.Response(), nil
}

// Login checks the credentials and starts a new session, invalidating any
// previous token. Unknown usernames and wrong passwords are not told apart.
func (s *userService) Login(ctx context.Context, req models.LoginUserRequest) (models.UserResponse, error) {
	log := logger.FromContext(ctx)

	if err := validate(ctx, s.validator, "*userService.Login", req); err != nil {
		return models.UserResponse{}, err
	}

	user, err := s.userRepository.FindUserByUsername(ctx, req.Username)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		log.Info().Str("func", "*userService.Login").Str("username", req.Username).Msg("unknown username")
		return models.UserResponse{}, ErrWrongCredentials
	case err != nil:
		return models.UserResponse{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = s.hasher.Verify(user.Password, req.Password); err != nil {
		if errors.Is(err, crypto.ErrPasswordMismatch) {
			log.Info().Str("func", "*userService.Login").Str("username", req.Username).Msg("wrong password")
			return models.UserResponse{}, ErrWrongCredentials
		}
		return models.UserResponse{}, fmt.Errorf("password verification failed: %w", err)
	}

	token, err := s.credentials.IssueToken(ctx, user)
	if err != nil {
		return models.UserResponse{}, err
	}

	resp := user.Response()
	resp.Token = token

	return resp, nil
}

func (s *userService) GetMe(ctx context.Context, user models.User) models.UserResponse {
	return user.Response()
}

// Update replaces the name when one is given and always stores a new hash of
// the given password.
func (s *userService) Update(ctx context.Context, user models.User, req models.UpdateUserRequest) (models.UserResponse, error) {
	if err := validate(ctx, s.validator, "*userService.Update", req); err != nil {
		return models.UserResponse{}, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}

	hash, err := s.hashPassword(ctx, "*userService.Update", req.Password)
	if err != nil {
		return models.UserResponse{}, err
	}
	user.Password = hash

	updated, err := s.userRepository.UpdateUser(ctx, user)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return models.UserResponse{}, ErrUnauthenticated
	case err != nil:
		return models.UserResponse{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updated.Response(), nil
}

func (s *userService) Logout(ctx context.Context, user models.User) error {
	return s.credentials.RevokeToken(ctx, user)
}

// hashPassword reports a password bcrypt cannot take as a violation of the
// password field rather than an internal failure.
func (s *userService) hashPassword(ctx context.Context, funcName, password string) (string, error) {
	hash, err := s.hasher.Hash(password)
	switch {
	case errors.Is(err, crypto.ErrPasswordTooLong), errors.Is(err, crypto.ErrEmptyPassword):
		logger.FromContext(ctx).Debug().Err(err).Str("func", funcName).Msg("password rejected by hasher")
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ValidationErrors{
			{Field: "password", Message: passwordViolation(err)},
		})
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to hash password")
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return hash, nil
}

func passwordViolation(err error) string {
	if errors.Is(err, crypto.ErrEmptyPassword) {
		return "is required"
	}
	return fmt.Sprintf("must contain at most %d bytes", crypto.MaxPasswordBytes)
}
