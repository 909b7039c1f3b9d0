// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql/driver"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells [DB.retry] whether a failed read may be
// attempted again.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// PostgresErrorClassifier is the [ErrorClassificator] used with pgx.
//
// Retryable: connection exceptions (class 08, except protocol violations),
// transaction rollbacks (class 40, deadlocks and serialization failures
// included), 57P03 "cannot connect now" and a bad pooled connection.
// Anything else, constraint violations in particular, is final.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	switch {
	case err == nil:
		return NonRetryable
	case errors.Is(err, driver.ErrBadConn):
		return Retryable
	}

	code := postgresError(err)
	switch {
	case code == "":
		return NonRetryable
	case code == pgerrcode.ProtocolViolation:
		return NonRetryable
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		code == pgerrcode.CannotConnectNow:
		return Retryable
	}

	return NonRetryable
}

// postgresError returns the SQLSTATE of err, or "" when err does not come
// from the server.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
