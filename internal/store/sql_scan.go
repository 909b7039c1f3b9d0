// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-contacts/models"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// column order must match userColumns
func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Name, &u.Password, &u.Token, &u.CreatedAt)
	return u, err
}

// column order must match contactColumns
func scanContact(row rowScanner) (models.Contact, error) {
	var c models.Contact
	err := row.Scan(&c.ID, &c.Username, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.CreatedAt)
	return c, err
}

// column order must match addressColumns
func scanAddress(row rowScanner) (models.Address, error) {
	var a models.Address
	err := row.Scan(&a.ID, &a.ContactID, &a.Street, &a.City, &a.Province, &a.Country, &a.PostalCode, &a.CreatedAt)
	return a, err
}
