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

// addressService manages the addresses of contacts. Each operation first
// asks the injected [ContactOwnershipVerifier] whether the caller owns the
// parent contact.
type addressService struct {
	addressRepository store.AddressRepository

	// contacts proves ownership of the parent contact.
	contacts ContactOwnershipVerifier

	validator validators.Validator
	logger    *logger.Logger
}

func NewAddressService(
	addressRepository store.AddressRepository,
	contacts ContactOwnershipVerifier,
	validator validators.Validator,
	logger *logger.Logger,
) AddressService {
	return &addressService{
		addressRepository: addressRepository,
		contacts:          contacts,
		validator:         validator,
		logger:            logger,
	}
}

func (s *addressService) CheckAddressExists(ctx context.Context, contactID, addressID int64) (models.Address, error) {
	if addressID < 1 {
		return models.Address{}, ErrAddressNotFound
	}

	address, err := s.addressRepository.FindAddress(ctx, contactID, addressID)
	switch {
	case errors.Is(err, store.ErrAddressNotFound):
		logger.FromContext(ctx).Debug().
			Str("func", "*addressService.CheckAddressExists").
			Int64("contact_id", contactID).
			Int64("address_id", addressID).
			Msg("address not found for contact")
		return models.Address{}, ErrAddressNotFound
	case err != nil:
		return models.Address{}, fmt.Errorf("address lookup ended with error: %w", err)
	}

	return address, nil
}

func (s *addressService) Create(ctx context.Context, user models.User, req models.CreateAddressRequest) (models.AddressResponse, error) {
	if err := validate(ctx, s.validator, "*addressService.Create", req); err != nil {
		return models.AddressResponse{}, err
	}

	if _, err := s.contacts.CheckContactExists(ctx, user, req.ContactID); err != nil {
		return models.AddressResponse{}, err
	}

	created, err := s.addressRepository.CreateAddress(ctx, models.Address{
		ContactID:  req.ContactID,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		return models.AddressResponse{}, fmt.Errorf("address creation ended with error: %w", err)
	}

	return created.Response(), nil
}

func (s *addressService) Get(ctx context.Context, user models.User, req models.GetAddressRequest) (models.AddressResponse, error) {
	if err := validate(ctx, s.validator, "*addressService.Get", req); err != nil {
		return models.AddressResponse{}, err
	}

	if _, err := s.contacts.CheckContactExists(ctx, user, req.ContactID); err != nil {
		return models.AddressResponse{}, err
	}

	address, err := s.CheckAddressExists(ctx, req.ContactID, req.ID)
	if err != nil {
		return models.AddressResponse{}, err
	}

	return address.Response(), nil
}

func (s *addressService) Update(ctx context.Context, user models.User, req models.UpdateAddressRequest) (models.AddressResponse, error) {
	if err := validate(ctx, s.validator, "*addressService.Update", req); err != nil {
		return models.AddressResponse{}, err
	}

	if _, err := s.contacts.CheckContactExists(ctx, user, req.ContactID); err != nil {
		return models.AddressResponse{}, err
	}

	if _, err := s.CheckAddressExists(ctx, req.ContactID, req.ID); err != nil {
		return models.AddressResponse{}, err
	}

	updated, err := s.addressRepository.UpdateAddress(ctx, models.Address{
		ID:         req.ID,
		ContactID:  req.ContactID,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	})
	switch {
	case errors.Is(err, store.ErrAddressNotFound):
		return models.AddressResponse{}, ErrAddressNotFound
	case err != nil:
		return models.AddressResponse{}, fmt.Errorf("address update ended with error: %w", err)
	}

	return updated.Response(), nil
}

func (s *addressService) Remove(ctx context.Context, user models.User, req models.GetAddressRequest) error {
	if err := validate(ctx, s.validator, "*addressService.Remove", req); err != nil {
		return err
	}

	if _, err := s.contacts.CheckContactExists(ctx, user, req.ContactID); err != nil {
		return err
	}

	if _, err := s.CheckAddressExists(ctx, req.ContactID, req.ID); err != nil {
		return err
	}

	err := s.addressRepository.DeleteAddress(ctx, req.ContactID, req.ID)
	switch {
	case errors.Is(err, store.ErrAddressNotFound):
		return ErrAddressNotFound
	case err != nil:
		return fmt.Errorf("address deletion ended with error: %w", err)
	}

	return nil
}

func (s *addressService) List(ctx context.Context, user models.User, contactID int64) ([]models.AddressResponse, error) {
	if _, err := s.contacts.CheckContactExists(ctx, user, contactID); err != nil {
		return nil, err
	}

	addresses, err := s.addressRepository.ListAddresses(ctx, contactID)
	if err != nil {
		return nil, fmt.Errorf("address listing ended with error: %w", err)
	}

	out := make([]models.AddressResponse, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, a.Response())
	}

	return out, nil
}
