// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account of the address book owner.
// Sensitive fields must never be exposed outside trusted boundaries:
// use [User.Response] to build the public projection.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"-"`

	// Username is the unique login of the user. Contacts reference their
	// owner by username.
	Username string `json:"username"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Password stores the bcrypt hash of the user's password, never plaintext.
	Password string `json:"-"`

	// Token is the current session token. Nil when the user is logged out.
	// Only one session is active at a time: a new login overwrites it.
	Token *string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Response returns the public projection of the user without the session
// token.
func (u User) Response() UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
	}
}

// RegisterUserRequest is the payload of POST /api/users.
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=1,max=100,maxbytes=72"`
	Name     string `json:"name" validate:"required,min=1,max=100"`
}

// LoginUserRequest is the payload of POST /api/users/login.
type LoginUserRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=1,max=100,maxbytes=72"`
}

// UpdateUserRequest is the payload of PUT /api/users.
// Password is mandatory and always re-hashed; Name is replaced only when set.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Password string  `json:"password" validate:"required,min=1,max=100,maxbytes=72"`
}

// UserResponse is the public projection of [User].
// Token is filled only by the login operation.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token,omitempty"`
}
