// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/models"
)

// addressRepository is the PostgreSQL-backed implementation of
// [AddressRepository].
type addressRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewAddressRepository(db *DB, logger *logger.Logger) AddressRepository {
	logger.Debug().Msg("creating address repository")
	return &addressRepository{
		db:     db,
		logger: logger,
	}
}

func (r *addressRepository) CreateAddress(ctx context.Context, address models.Address) (models.Address, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAddressQuery(address)
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.CreateAddress").Msg("failed to build query")
		return models.Address{}, err
	}

	created, err := scanAddress(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.CreateAddress").Int64("contact_id", address.ContactID).Msg("failed to insert address")
		return models.Address{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *addressRepository) FindAddress(ctx context.Context, contactID, addressID int64) (models.Address, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAddressQuery(contactID, addressID)
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.FindAddress").Msg("failed to build query")
		return models.Address{}, err
	}

	var found models.Address
	err = r.db.retry(ctx, func(ctx context.Context) error {
		var scanErr error
		found, scanErr = scanAddress(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Address{}, ErrAddressNotFound
	case err != nil:
		log.Err(err).
			Str("func", "*addressRepository.FindAddress").
			Int64("contact_id", contactID).
			Int64("address_id", addressID).
			Msg("failed to find address")
		return models.Address{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

func (r *addressRepository) UpdateAddress(ctx context.Context, address models.Address) (models.Address, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateAddressQuery(address)
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.UpdateAddress").Msg("failed to build query")
		return models.Address{}, err
	}

	updated, err := scanAddress(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Address{}, ErrAddressNotFound
	case err != nil:
		log.Err(err).Str("func", "*addressRepository.UpdateAddress").Int64("address_id", address.ID).Msg("failed to update address")
		return models.Address{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

func (r *addressRepository) DeleteAddress(ctx context.Context, contactID, addressID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAddressQuery(contactID, addressID)
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.DeleteAddress").Msg("failed to build query")
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.DeleteAddress").Int64("address_id", addressID).Msg("failed to delete address")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrAddressNotFound
	}

	return nil
}

// ListAddresses returns every address of the contact, ordered by id.
// The result is empty, never nil, when the contact has none.
func (r *addressRepository) ListAddresses(ctx context.Context, contactID int64) ([]models.Address, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAddressesQuery(contactID)
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.ListAddresses").Msg("failed to build query")
		return nil, err
	}

	var results []models.Address
	err = r.db.retry(ctx, func(ctx context.Context) error {
		rows, queryErr := r.db.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		results = make([]models.Address, 0)
		for rows.Next() {
			address, scanErr := scanAddress(rows)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			results = append(results, address)
		}

		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.ListAddresses").Int64("contact_id", contactID).Msg("failed to list addresses")
		return nil, err
	}

	return results, nil
}
