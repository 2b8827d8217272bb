// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrProfileAlreadyExists is returned when a new profile collides with an
	// existing id or key hash.
	ErrProfileAlreadyExists = errors.New("profile already exists")

	// ErrProfileNotFound is returned when no profile matches the given id or
	// current key hash.
	ErrProfileNotFound = errors.New("profile was not found")

	// ErrKeyRetired is returned when a key hash belongs to a key that was
	// replaced by a recovery.
	ErrKeyRetired = errors.New("secret key was retired")

	ErrRumorNotFound = errors.New("rumor was not found")

	// ErrAlreadyVoted is returned when the nullifier, or an alias of it,
	// already has a vote on the rumor.
	ErrAlreadyVoted = errors.New("nullifier has already voted on this rumor")

	ErrVoteNotFound = errors.New("vote was not found")

	// ErrKeyNotCurrent is returned when a vote is cast with a key the
	// profile no longer holds, e.g. one replaced by a concurrent recovery.
	ErrKeyNotCurrent = errors.New("secret key is not the profile's current key")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrPreparingStatement is returned when a SQL statement cannot be
	// prepared.
	ErrPreparingStatement = errors.New("failed to prepare statement")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	ErrScanningRow  = errors.New("failed to scan row")
	ErrScanningRows = errors.New("failed to scan rows")
)
