// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math"
	"time"
)

// Contact is an address book entry. Every contact belongs to exactly one
// user, referenced by Username.
type Contact struct {
	ID        int64     `json:"id"`
	Username  string    `json:"-"`
	FirstName string    `json:"first_name"`
	LastName  *string   `json:"last_name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Contact model.
func (c Contact) TableName() string {
	return "contacts"
}

// Response returns the public projection of the contact.
func (c Contact) Response() ContactResponse {
	return ContactResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}

// CreateContactRequest is the payload of POST /api/contacts.
type CreateContactRequest struct {
	FirstName string  `json:"first_name" validate:"required,min=3,max=30"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,min=3,max=30"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email,max=100"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,min=8,max=20"`
}

// UpdateContactRequest is the payload of PUT /api/contacts/{contactID}.
// ID always comes from the path; an id sent in the body is overwritten.
type UpdateContactRequest struct {
	ID        int64   `json:"id" validate:"required,min=1"`
	FirstName string  `json:"first_name" validate:"required,min=3,max=30"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,min=3,max=30"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email,max=100"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,min=8,max=20"`
}

// SearchContactRequest carries the query parameters of GET /api/contacts.
// All supplied filters are AND-ed together.
type SearchContactRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Email   *string `json:"email,omitempty" validate:"omitempty,min=1"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,min=1"`
	Page    int     `json:"page" validate:"min=1"`
	PerPage int     `json:"perPage" validate:"min=1,max=100"`
}

// Default paging values used when the query omits page or perPage.
const (
	DefaultPage    = 1
	DefaultPerPage = 10
)

// Offset returns the number of rows to skip for the requested page. It
// saturates at math.MaxInt64, the largest OFFSET postgres accepts.
func (r SearchContactRequest) Offset() uint64 {
	if r.Page <= 1 || r.PerPage <= 0 {
		return 0
	}

	skipPages, perPage := uint64(r.Page-1), uint64(r.PerPage)
	if skipPages > math.MaxInt64/perPage {
		return math.MaxInt64
	}

	return skipPages * perPage
}

// ContactResponse is the public projection of [Contact].
type ContactResponse struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}
