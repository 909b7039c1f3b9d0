// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-contacts/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestUserCtxKey(t *testing.T) {
	if UserCtxKey.String() != "user" {
		t.Errorf("expected 'user', got '%s'", UserCtxKey.String())
	}
}

func TestGetUserFromContext_Success(t *testing.T) {
	want := models.User{ID: 42, Username: "khannedy", Name: "Eko"}
	ctx := context.WithValue(context.Background(), UserCtxKey, want)

	user, ok := GetUserFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if user.Username != want.Username || user.ID != want.ID {
		t.Errorf("expected %+v, got %+v", want, user)
	}
}

func TestGetUserFromContext_Missing(t *testing.T) {
	user, ok := GetUserFromContext(context.Background())

	if ok {
		t.Error("expected ok=false, got true")
	}
	if user.Username != "" {
		t.Errorf("expected zero user, got %+v", user)
	}
}

func TestGetUserFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserCtxKey, "khannedy")

	if _, ok := GetUserFromContext(ctx); ok {
		t.Error("expected ok=false for a non-User value")
	}
}
