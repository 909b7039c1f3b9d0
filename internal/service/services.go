// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/crypto"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/store"
	"github.com/MKhiriev/go-contacts/internal/validators"
)

type Services struct {
	CredentialService CredentialService
	UserService       UserService
	ContactService    ContactService
	AddressService    AddressService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App)
	if err != nil {
		return nil, err
	}

	validator := validators.NewStructValidator()
	credentialService := NewCredentialService(storages.UserRepository, crypto.NewTokenGenerator(), logger)
	contactService := NewContactService(storages.ContactRepository, validator, logger)

	return &Services{
		CredentialService: credentialService,
		UserService: NewUserService(
			storages.UserRepository,
			credentialService,
			crypto.NewPasswordHasher(cfg.App.PasswordHashCost),
			validator,
			logger,
		),
		ContactService: contactService,
		AddressService: NewAddressService(storages.AddressRepository, contactService, validator, logger),
		AppInfoService: appInfoService,
	}, nil
}
