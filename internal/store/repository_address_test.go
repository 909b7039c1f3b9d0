// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addressRows() *sqlmock.Rows {
	return sqlmock.NewRows(addressColumns)
}

func TestCreateAddress(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAddressRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO addresses").
		WithArgs(int64(2), "Jalan Belum Ada", nil, nil, "Indonesia", "11111").
		WillReturnRows(addressRows().AddRow(1, 2, "Jalan Belum Ada", nil, nil, "Indonesia", "11111", time.Now()))

	created, err := repo.CreateAddress(context.Background(), models.Address{
		ContactID: 2, Street: strPtr("Jalan Belum Ada"), Country: "Indonesia", PostalCode: "11111",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, int64(2), created.ContactID)
	assert.Nil(t, created.City)
	expectationsMet(t, mock)
}

func TestFindAddress(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAddressRepository(db, logger.Nop())
	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM addresses WHERE contact_id = \\$1 AND id = \\$2").
		WithArgs(int64(2), int64(1)).
		WillReturnRows(addressRows().AddRow(1, 2, nil, "Jakarta", nil, "Indonesia", "11111", time.Now()))

	found, err := repo.FindAddress(ctx, 2, 1)
	require.NoError(t, err)
	require.NotNil(t, found.City)
	assert.Equal(t, "Jakarta", *found.City)

	mock.ExpectQuery("SELECT (.+) FROM addresses").WillReturnRows(addressRows())
	_, err = repo.FindAddress(ctx, 3, 1)
	assert.ErrorIs(t, err, ErrAddressNotFound)
	expectationsMet(t, mock)
}

func TestUpdateAddress(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAddressRepository(db, logger.Nop())

	mock.ExpectQuery("UPDATE addresses SET (.+) WHERE contact_id = \\$6 AND id = \\$7").
		WithArgs(nil, nil, "Jawa Barat", "Indonesia", "22222", int64(2), int64(1)).
		WillReturnRows(addressRows().AddRow(1, 2, nil, nil, "Jawa Barat", "Indonesia", "22222", time.Now()))

	updated, err := repo.UpdateAddress(context.Background(), models.Address{
		ID: 1, ContactID: 2, Province: strPtr("Jawa Barat"), Country: "Indonesia", PostalCode: "22222",
	})
	require.NoError(t, err)
	assert.Equal(t, "22222", updated.PostalCode)
	expectationsMet(t, mock)
}

func TestDeleteAddress(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAddressRepository(db, logger.Nop())

	mock.ExpectExec("DELETE FROM addresses").
		WithArgs(int64(2), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeleteAddress(context.Background(), 2, 1), ErrAddressNotFound)
	expectationsMet(t, mock)
}

func TestListAddresses(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAddressRepository(db, logger.Nop())
	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM addresses WHERE contact_id = \\$1 ORDER BY id").
		WithArgs(int64(2)).
		WillReturnRows(addressRows().
			AddRow(1, 2, nil, nil, nil, "Indonesia", "11111", time.Now()).
			AddRow(2, 2, nil, nil, nil, "Malaysia", "22222", time.Now()))

	list, err := repo.ListAddresses(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	mock.ExpectQuery("SELECT (.+) FROM addresses").WillReturnRows(addressRows())
	list, err = repo.ListAddresses(ctx, 3)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
	expectationsMet(t, mock)
}
