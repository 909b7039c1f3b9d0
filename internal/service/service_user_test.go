// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-contacts/internal/crypto"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/mock"
	"github.com/MKhiriev/go-contacts/internal/store"
	"github.com/MKhiriev/go-contacts/internal/validators"
	"github.com/MKhiriev/go-contacts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type userSvcMocks struct {
	repo        *mock.MockUserRepository
	credentials *mock.MockCredentialService
	hasher      *mock.MockPasswordHasher
}

func newTestUserSvc(t *testing.T) (UserService, userSvcMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := userSvcMocks{
		repo:        mock.NewMockUserRepository(ctrl),
		credentials: mock.NewMockCredentialService(ctrl),
		hasher:      mock.NewMockPasswordHasher(ctrl),
	}

	return NewUserService(m.repo, m.credentials, m.hasher, validators.NewStructValidator(), logger.Nop()), m
}

func strPtr(s string) *string { return &s }

// ── Register ─────────────────────────────────────────────────────────────────

func TestUserService_Register_Success(t *testing.T) {
	svc, m := newTestUserSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		m.hasher.EXPECT().Hash("rahasia").Return("hashed", nil),
		m.repo.EXPECT().CreateUser(ctx, models.User{Username: "khannedy", Name: "Eko", Password: "hashed"}).
			Return(models.User{ID: 1, Username: "khannedy", Name: "Eko", Password: "hashed"}, nil),
	)

	resp, err := svc.Register(ctx, models.RegisterUserRequest{Username: "khannedy", Password: "rahasia", Name: "Eko"})
	require.NoError(t, err)
	assert.Equal(t, models.UserResponse{ID: 1, Username: "khannedy", Name: "Eko"}, resp)
}

func TestUserService_Register_InvalidRequestSkipsStorage(t *testing.T) {
	svc, _ := newTestUserSvc(t)

	_, err := svc.Register(context.Background(), models.RegisterUserRequest{})
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	var verrs validators.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 3)
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	svc, m := newTestUserSvc(t)

	m.hasher.EXPECT().Hash(gomock.Any()).Return("hashed", nil)
	m.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUsernameAlreadyExists)

	_, err := svc.Register(context.Background(), models.RegisterUserRequest{Username: "khannedy", Password: "rahasia", Name: "Eko"})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
}

func TestUserService_Register_PasswordLongerThanBcryptAllows(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "80 ascii characters", password: strings.Repeat("x", 80)},
		{name: "40 two-byte characters", password: strings.Repeat("é", 40)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestUserSvc(t)

			_, err := svc.Register(context.Background(), models.RegisterUserRequest{Username: "khannedy", Password: tt.password, Name: "Eko"})
			require.ErrorIs(t, err, ErrInvalidDataProvided)

			var verrs validators.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			require.Len(t, verrs, 1)
			assert.Equal(t, models.FieldViolation{Field: "password", Message: "must contain at most 72 bytes"}, verrs[0])
		})
	}
}

func TestUserService_Register_HasherRejectsPassword(t *testing.T) {
	svc, m := newTestUserSvc(t)

	m.hasher.EXPECT().Hash("rahasia").Return("", crypto.ErrPasswordTooLong)

	_, err := svc.Register(context.Background(), models.RegisterUserRequest{Username: "khannedy", Password: "rahasia", Name: "Eko"})
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	var verrs validators.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "password", verrs[0].Field)
}

func TestUserService_Register_HasherFailureIsInternal(t *testing.T) {
	svc, m := newTestUserSvc(t)

	m.hasher.EXPECT().Hash("rahasia").Return("", errors.New("boom"))

	_, err := svc.Register(context.Background(), models.RegisterUserRequest{Username: "khannedy", Password: "rahasia", Name: "Eko"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidDataProvided)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestUserService_Login_Success(t *testing.T) {
	svc, m := newTestUserSvc(t)
	ctx := context.Background()
	stored := models.User{ID: 1, Username: "khannedy", Name: "Eko", Password: "hashed"}

	gomock.InOrder(
		m.repo.EXPECT().FindUserByUsername(ctx, "khannedy").Return(stored, nil),
		m.hasher.EXPECT().Verify("hashed", "rahasia").Return(nil),
		m.credentials.EXPECT().IssueToken(ctx, stored).Return("tok", nil),
	)

	resp, err := svc.Login(ctx, models.LoginUserRequest{Username: "khannedy", Password: "rahasia"})
	require.NoError(t, err)
	assert.Equal(t, "tok", resp.Token)
	assert.Equal(t, "khannedy", resp.Username)
}

func TestUserService_Login_WrongCredentialsLookAlike(t *testing.T) {
	t.Run("unknown username", func(t *testing.T) {
		svc, m := newTestUserSvc(t)
		m.repo.EXPECT().FindUserByUsername(gomock.Any(), "ghost").Return(models.User{}, store.ErrUserNotFound)

		_, err := svc.Login(context.Background(), models.LoginUserRequest{Username: "ghost", Password: "rahasia"})
		assert.ErrorIs(t, err, ErrWrongCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, m := newTestUserSvc(t)
		m.repo.EXPECT().FindUserByUsername(gomock.Any(), "khannedy").Return(models.User{Username: "khannedy", Password: "hashed"}, nil)
		m.hasher.EXPECT().Verify("hashed", "salah").Return(crypto.ErrPasswordMismatch)

		_, err := svc.Login(context.Background(), models.LoginUserRequest{Username: "khannedy", Password: "salah"})
		assert.ErrorIs(t, err, ErrWrongCredentials)
	})
}

// ── GetMe / Update / Logout ──────────────────────────────────────────────────

func TestUserService_GetMe_HidesSecrets(t *testing.T) {
	svc, _ := newTestUserSvc(t)

	resp := svc.GetMe(context.Background(), models.User{ID: 1, Username: "khannedy", Name: "Eko", Password: "hashed", Token: strPtr("tok")})
	assert.Equal(t, models.UserResponse{ID: 1, Username: "khannedy", Name: "Eko"}, resp)
}

func TestUserService_Update_KeepsNameWhenAbsent(t *testing.T) {
	svc, m := newTestUserSvc(t)
	current := models.User{ID: 1, Username: "khannedy", Name: "Eko", Password: "old"}

	m.hasher.EXPECT().Hash("baru").Return("new-hash", nil)
	m.repo.EXPECT().UpdateUser(gomock.Any(), models.User{ID: 1, Username: "khannedy", Name: "Eko", Password: "new-hash"}).
		Return(models.User{ID: 1, Username: "khannedy", Name: "Eko", Password: "new-hash"}, nil)

	resp, err := svc.Update(context.Background(), current, models.UpdateUserRequest{Password: "baru"})
	require.NoError(t, err)
	assert.Equal(t, "Eko", resp.Name)
}

func TestUserService_Update_RequiresPassword(t *testing.T) {
	svc, _ := newTestUserSvc(t)

	_, err := svc.Update(context.Background(), models.User{Username: "khannedy"}, models.UpdateUserRequest{Name: strPtr("Budi")})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUserService_Update_PasswordTooLongForBcrypt(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(repo, mock.NewMockCredentialService(ctrl), crypto.NewPasswordHasher(bcrypt.MinCost), validators.NewStructValidator(), logger.Nop())

	_, err := svc.Update(context.Background(), models.User{Username: "khannedy"}, models.UpdateUserRequest{Password: strings.Repeat("x", 80)})
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	var verrs validators.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "password", verrs[0].Field)
}

func TestUserService_Update_StoredHashVerifiesNewPasswordOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	hasher := crypto.NewPasswordHasher(bcrypt.MinCost)
	svc := NewUserService(repo, mock.NewMockCredentialService(ctrl), hasher, validators.NewStructValidator(), logger.Nop())

	oldHash, err := hasher.Hash("lama")
	require.NoError(t, err)

	var stored models.User
	repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			stored = u
			return u, nil
		})

	resp, err := svc.Update(context.Background(),
		models.User{Username: "khannedy", Name: "Eko", Password: oldHash},
		models.UpdateUserRequest{Name: strPtr("Budi"), Password: "baru"})
	require.NoError(t, err)
	assert.Equal(t, "Budi", resp.Name)

	assert.NoError(t, hasher.Verify(stored.Password, "baru"))
	assert.ErrorIs(t, hasher.Verify(stored.Password, "lama"), crypto.ErrPasswordMismatch)
}

func TestUserService_Logout(t *testing.T) {
	svc, m := newTestUserSvc(t)
	user := models.User{Username: "khannedy"}

	m.credentials.EXPECT().RevokeToken(gomock.Any(), user).Return(nil)

	require.NoError(t, svc.Logout(context.Background(), user))
}
