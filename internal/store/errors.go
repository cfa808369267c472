// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when a lookup, update or delete targets a
	// user id, username or email that is not stored.
	ErrUserNotFound = errors.New("user not found")

	// ErrTodoNotFound is returned when a lookup, update or delete targets a
	// todo id that is not stored.
	ErrTodoNotFound = errors.New("todo not found")

	// ErrUsernameAlreadyExists is returned when a write hits the
	// uq_users_username constraint.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrEmailAlreadyExists is returned when a write hits the uq_users_email
	// constraint.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrTodoOwnerNotFound is returned when a todo write references a user
	// that does not exist (foreign key violation).
	ErrTodoOwnerNotFound = errors.New("todo owner not found")

	// ErrUnsupportedDriver is returned by [NewStorages] for a driver name
	// other than postgres or sqlite.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
