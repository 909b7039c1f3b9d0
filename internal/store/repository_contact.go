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

// contactRepository is the PostgreSQL-backed implementation of
// [ContactRepository]. Every statement filters on the owning username.
type contactRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		db:     db,
		logger: logger,
	}
}

func (r *contactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertContactQuery(contact)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.CreateContact").Msg("failed to build query")
		return models.Contact{}, err
	}

	created, err := scanContact(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.CreateContact").Str("username", contact.Username).Msg("failed to insert contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// FindContact returns the contact only when it belongs to username.
func (r *contactRepository) FindContact(ctx context.Context, username string, contactID int64) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectContactQuery(username, contactID)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.FindContact").Msg("failed to build query")
		return models.Contact{}, err
	}

	var found models.Contact
	err = r.db.retry(ctx, func(ctx context.Context) error {
		var scanErr error
		found, scanErr = scanContact(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Contact{}, ErrContactNotFound
	case err != nil:
		log.Err(err).Str("func", "*contactRepository.FindContact").Int64("contact_id", contactID).Msg("failed to find contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

func (r *contactRepository) UpdateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateContactQuery(contact)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.UpdateContact").Msg("failed to build query")
		return models.Contact{}, err
	}

	updated, err := scanContact(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Contact{}, ErrContactNotFound
	case err != nil:
		log.Err(err).Str("func", "*contactRepository.UpdateContact").Int64("contact_id", contact.ID).Msg("failed to update contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

// DeleteContact removes the contact together with its addresses
// (ON DELETE CASCADE).
func (r *contactRepository) DeleteContact(ctx context.Context, username string, contactID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteContactQuery(username, contactID)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.DeleteContact").Msg("failed to build query")
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.DeleteContact").Int64("contact_id", contactID).Msg("failed to delete contact")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrContactNotFound
	}

	return nil
}

func (r *contactRepository) SearchContacts(ctx context.Context, username string, req models.SearchContactRequest) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSearchContactsQuery(username, req)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.SearchContacts").Msg("failed to build query")
		return nil, err
	}

	var results []models.Contact
	err = r.db.retry(ctx, func(ctx context.Context) error {
		var queryErr error
		results, queryErr = r.querySearch(ctx, query, args)
		return queryErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "*contactRepository.SearchContacts").
			Int("page", req.Page).
			Int("per_page", req.PerPage).
			Msg("failed to search contacts")
		return nil, err
	}

	return results, nil
}

func (r *contactRepository) querySearch(ctx context.Context, query string, args []any) ([]models.Contact, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Contact, 0)
	for rows.Next() {
		contact, scanErr := scanContact(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, contact)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

func (r *contactRepository) CountContacts(ctx context.Context, username string, req models.SearchContactRequest) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountContactsQuery(username, req)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.CountContacts").Msg("failed to build query")
		return 0, err
	}

	var total int64
	err = r.db.retry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&total)
	})
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.CountContacts").Msg("failed to count contacts")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}
