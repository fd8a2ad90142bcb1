// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoDocumentDir is returned when no private document directory is
	// configured or it cannot be resolved.
	ErrNoDocumentDir = errors.New("no document directory available")

	// ErrKeyNotFound is returned by the key-value repository when the
	// requested key has never been written or was deleted.
	ErrKeyNotFound = errors.New("key not found")

	// ErrNoSession is returned when no user session is persisted locally.
	ErrNoSession = errors.New("no saved session")

	// ErrInvalidFileName is returned when a file name would escape the
	// document directory.
	ErrInvalidFileName = errors.New("invalid file name")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// statement fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrDecodingValue is returned when a stored JSON value cannot be decoded.
	ErrDecodingValue = errors.New("failed to decode stored value")

	// ErrEncodingValue is returned when a value cannot be encoded to JSON.
	ErrEncodingValue = errors.New("failed to encode value")
)
