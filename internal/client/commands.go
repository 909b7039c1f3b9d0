// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contacts/models"
)

var errContactRequired = errors.New("-contact must be a positive id")

func (a *App) register(ctx context.Context, args []string) error {
	var req models.RegisterUserRequest

	fs := a.newFlagSet("register")
	fs.StringVar(&req.Username, "username", "", "username")
	fs.StringVar(&req.Password, "password", "", "password")
	fs.StringVar(&req.Name, "name", "", "display name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.api.Register(ctx, req)
	if err != nil {
		return err
	}

	return a.print(user)
}

func (a *App) login(ctx context.Context, args []string) error {
	var req models.LoginUserRequest

	fs := a.newFlagSet("login")
	fs.StringVar(&req.Username, "username", "", "username")
	fs.StringVar(&req.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.api.Login(ctx, req)
	if err != nil {
		return err
	}

	return a.print(user)
}

func (a *App) me(ctx context.Context, args []string) error {
	if err := a.newFlagSet("me").Parse(args); err != nil {
		return err
	}

	user, err := a.api.Me(ctx)
	if err != nil {
		return err
	}

	return a.print(user)
}

func (a *App) logout(ctx context.Context, args []string) error {
	if err := a.newFlagSet("logout").Parse(args); err != nil {
		return err
	}

	if err := a.api.Logout(ctx); err != nil {
		return err
	}

	return a.print(models.DataResponse[string]{Data: models.OK})
}

func (a *App) contacts(ctx context.Context, args []string) error {
	var name, email, phone string
	req := models.SearchContactRequest{}

	fs := a.newFlagSet("contacts")
	fs.StringVar(&name, "name", "", "first or last name fragment")
	fs.StringVar(&email, "email", "", "email fragment")
	fs.StringVar(&phone, "phone", "", "phone fragment")
	fs.IntVar(&req.Page, "page", 1, "page number, starting at 1")
	fs.IntVar(&req.PerPage, "per-page", 10, "contacts per page")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req.Name, req.Email, req.Phone = optional(name), optional(email), optional(phone)

	page, err := a.api.SearchContacts(ctx, req)
	if err != nil {
		return err
	}

	return a.print(page)
}

func (a *App) contactCreate(ctx context.Context, args []string) error {
	var lastName, email, phone string
	req := models.CreateContactRequest{}

	fs := a.newFlagSet("contact-create")
	fs.StringVar(&req.FirstName, "first-name", "", "first name")
	fs.StringVar(&lastName, "last-name", "", "last name")
	fs.StringVar(&email, "email", "", "email")
	fs.StringVar(&phone, "phone", "", "phone")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req.LastName, req.Email, req.Phone = optional(lastName), optional(email), optional(phone)

	contact, err := a.api.CreateContact(ctx, req)
	if err != nil {
		return err
	}

	return a.print(contact)
}

func (a *App) addresses(ctx context.Context, args []string) error {
	var contactID int64

	fs := a.newFlagSet("addresses")
	fs.Int64Var(&contactID, "contact", 0, "contact id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if contactID <= 0 {
		return errContactRequired
	}

	list, err := a.api.ListAddresses(ctx, contactID)
	if err != nil {
		return err
	}

	return a.print(list)
}

func (a *App) version(ctx context.Context, args []string) error {
	if err := a.newFlagSet("version").Parse(args); err != nil {
		return err
	}

	v, err := a.api.Version(ctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, v)
	return err
}
