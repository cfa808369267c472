// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify].
type ErrorClassification int

const (
	// Unclassified covers every error that is not a constraint violation
	// the repositories translate.
	Unclassified ErrorClassification = iota

	// UniqueViolation means a UNIQUE constraint rejected the write.
	UniqueViolation

	// ForeignKeyViolation means a FOREIGN KEY constraint rejected the write.
	ForeignKeyViolation
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. The returned name is the
// constraint name reported by the server (e.g. "uq_users_email").
func (c *PostgresErrorClassifier) Classify(err error) (ErrorClassification, string) {
	if err == nil {
		return Unclassified, ""
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return Unclassified, ""
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return UniqueViolation, pgErr.ConstraintName
	case pgerrcode.ForeignKeyViolation:
		return ForeignKeyViolation, pgErr.ConstraintName
	}

	return Unclassified, ""
}

// SQLiteErrorClassifier implements [ErrorClassificator] for SQLite.
// SQLite does not report constraint names, so the returned name is the
// driver message, e.g. "UNIQUE constraint failed: users.email".
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(err error) (ErrorClassification, string) {
	if err == nil {
		return Unclassified, ""
	}

	var liteErr sqlite3.Error
	if !errors.As(err, &liteErr) {
		return Unclassified, ""
	}

	switch liteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return UniqueViolation, liteErr.Error()
	case sqlite3.ErrConstraintForeignKey:
		return ForeignKeyViolation, liteErr.Error()
	}

	return Unclassified, ""
}
