// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Address is a postal address attached to a contact. Ownership is derived
// from the parent contact.
type Address struct {
	ID         int64     `json:"id"`
	ContactID  int64     `json:"-"`
	Street     *string   `json:"street"`
	City       *string   `json:"city"`
	Province   *string   `json:"province"`
	Country    string    `json:"country"`
	PostalCode string    `json:"postal_code"`
	CreatedAt  time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Address model.
func (a Address) TableName() string {
	return "addresses"
}

// Response returns the public projection of the address.
func (a Address) Response() AddressResponse {
	return AddressResponse{
		ID:         a.ID,
		Street:     a.Street,
		City:       a.City,
		Province:   a.Province,
		Country:    a.Country,
		PostalCode: a.PostalCode,
	}
}

// CreateAddressRequest is the payload of POST /api/contacts/{contactID}/addresses.
// ContactID is taken from the path.
type CreateAddressRequest struct {
	ContactID  int64   `json:"contact_id" validate:"required,min=1"`
	Street     *string `json:"street,omitempty" validate:"omitempty,min=1,max=255"`
	City       *string `json:"city,omitempty" validate:"omitempty,min=1,max=100"`
	Province   *string `json:"province,omitempty" validate:"omitempty,min=1,max=100"`
	Country    string  `json:"country" validate:"required,min=3,max=100"`
	PostalCode string  `json:"postal_code" validate:"required,min=3,max=10"`
}

// UpdateAddressRequest is the payload of PUT /api/contacts/{contactID}/addresses/{addressID}.
// ID and ContactID are taken from the path.
type UpdateAddressRequest struct {
	ID         int64   `json:"id" validate:"required,min=1"`
	ContactID  int64   `json:"contact_id" validate:"required,min=1"`
	Street     *string `json:"street,omitempty" validate:"omitempty,min=1,max=255"`
	City       *string `json:"city,omitempty" validate:"omitempty,min=1,max=100"`
	Province   *string `json:"province,omitempty" validate:"omitempty,min=1,max=100"`
	Country    string  `json:"country" validate:"required,min=3,max=100"`
	PostalCode string  `json:"postal_code" validate:"required,min=3,max=10"`
}

// GetAddressRequest identifies a single address for get and remove.
type GetAddressRequest struct {
	ID        int64 `json:"id" validate:"required,min=1"`
	ContactID int64 `json:"contact_id" validate:"required,min=1"`
}

// AddressResponse is the public projection of [Address].
type AddressResponse struct {
	ID         int64   `json:"id"`
	Street     *string `json:"street"`
	City       *string `json:"city"`
	Province   *string `json:"province"`
	Country    string  `json:"country"`
	PostalCode string  `json:"postal_code"`
}
