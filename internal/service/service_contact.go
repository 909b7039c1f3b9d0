// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/store"
	"github.com/MKhiriev/go-contacts/internal/validators"
	"github.com/MKhiriev/go-contacts/models"
)

// contactService manages the contacts of the calling user. A contact owned
// by somebody else is reported exactly like a missing one.
type contactService struct {
	contactRepository store.ContactRepository
	validator         validators.Validator
	logger            *logger.Logger
}

func NewContactService(contactRepository store.ContactRepository, validator validators.Validator, logger *logger.Logger) ContactService {
	return &contactService{
		contactRepository: contactRepository,
		validator:         validator,
		logger:            logger,
	}
}

func (s *contactService) Create(ctx context.Context, user models.User, req models.CreateContactRequest) (models.ContactResponse, error) {
	if err := validate(ctx, s.validator, "*contactService.Create", req); err != nil {
		return models.ContactResponse{}, err
	}

	created, err := s.contactRepository.CreateContact(ctx, models.Contact{
		Username:  user.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		return models.ContactResponse{}, fmt.Errorf("contact creation ended with error: %w", err)
	}

	return created.Response(), nil
}

func (s *contactService) CheckContactExists(ctx context.Context, user models.User, contactID int64) (models.Contact, error) {
	if contactID < 1 {
		return models.Contact{}, ErrContactNotFound
	}

	contact, err := s.contactRepository.FindContact(ctx, user.Username, contactID)
	switch {
	case errors.Is(err, store.ErrContactNotFound):
		logger.FromContext(ctx).Debug().
			Str("func", "*contactService.CheckContactExists").
			Int64("contact_id", contactID).
			Msg("contact not found for user")
		return models.Contact{}, ErrContactNotFound
	case err != nil:
		return models.Contact{}, fmt.Errorf("contact lookup ended with error: %w", err)
	}

	return contact, nil
}

func (s *contactService) Get(ctx context.Context, user models.User, contactID int64) (models.ContactResponse, error) {
	contact, err := s.CheckContactExists(ctx, user, contactID)
	if err != nil {
		return models.ContactResponse{}, err
	}

	return contact.Response(), nil
}

// Update overwrites every field of the contact; optional fields missing from
// req become null.
func (s *contactService) Update(ctx context.Context, user models.User, req models.UpdateContactRequest) (models.ContactResponse, error) {
	if err := validate(ctx, s.validator, "*contactService.Update", req); err != nil {
		return models.ContactResponse{}, err
	}

	if _, err := s.CheckContactExists(ctx, user, req.ID); err != nil {
		return models.ContactResponse{}, err
	}

	updated, err := s.contactRepository.UpdateContact(ctx, models.Contact{
		ID:        req.ID,
		Username:  user.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	switch {
	case errors.Is(err, store.ErrContactNotFound):
		return models.ContactResponse{}, ErrContactNotFound
	case err != nil:
		return models.ContactResponse{}, fmt.Errorf("contact update ended with error: %w", err)
	}

	return updated.Response(), nil
}

func (s *contactService) Delete(ctx context.Context, user models.User, contactID int64) error {
	if _, err := s.CheckContactExists(ctx, user, contactID); err != nil {
		return err
	}

	err := s.contactRepository.DeleteContact(ctx, user.Username, contactID)
	switch {
	case errors.Is(err, store.ErrContactNotFound):
		return ErrContactNotFound
	case err != nil:
		return fmt.Errorf("contact deletion ended with error: %w", err)
	}

	return nil
}

// Search returns one page of the caller's contacts matching every filter in
// req. A page past the end has empty data and the real total page count.
func (s *contactService) Search(ctx context.Context, user models.User, req models.SearchContactRequest) (models.Page[models.ContactResponse], error) {
	if err := validate(ctx, s.validator, "*contactService.Search", req); err != nil {
		return models.Page[models.ContactResponse]{}, err
	}

	total, err := s.contactRepository.CountContacts(ctx, user.Username, req)
	if err != nil {
		return models.Page[models.ContactResponse]{}, fmt.Errorf("contact count ended with error: %w", err)
	}

	data := make([]models.ContactResponse, 0, req.PerPage)

	// a page past the last row is empty whatever the offset
	if total > 0 && req.Offset() < uint64(total) {
		contacts, err := s.contactRepository.SearchContacts(ctx, user.Username, req)
		if err != nil {
			return models.Page[models.ContactResponse]{}, fmt.Errorf("contact search ended with error: %w", err)
		}

		for _, c := range contacts {
			data = append(data, c.Response())
		}
	}

	return models.Page[models.ContactResponse]{
		Data: data,
		Paging: models.Paging{
			Page:       req.Page,
			PerPage:    req.PerPage,
			TotalPages: models.TotalPages(total, req.PerPage),
		},
	}, nil
}
