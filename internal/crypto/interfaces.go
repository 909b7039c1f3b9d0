// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the credential primitives of go-contacts: one-way
// password hashing and generation of opaque session tokens.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher turns plaintext passwords into one-way salted hashes and
// checks candidates against them.
type PasswordHasher interface {
	// Hash returns a salted hash of password suitable for storage.
	Hash(password string) (string, error)

	// Verify reports whether password matches hash. A mismatch is reported
	// as ErrPasswordMismatch; any other error means the hash is unusable.
	Verify(hash, password string) error
}

// TokenGenerator produces unguessable session tokens.
type TokenGenerator interface {
	// Generate returns a fresh token. Two calls never return the same value.
	Generate() (string, error)
}
