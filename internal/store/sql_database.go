// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/migrations"
)

// DB wraps a *sql.DB with the dialect details the repositories need: the
// migration set, the placeholder format for generated queries and the
// classifier for driver errors.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger

	dialect     string
	placeholder sq.PlaceholderFormat

	// now stamps created_at and updated_at.
	now func() time.Time
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect, db.logger)
}

// Dialect returns the migration dialect of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// builder returns a squirrel statement builder using the connection's
// placeholder format.
func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

// classify translates a driver error. Nil classificator means no
// translation.
func (db *DB) classify(err error) (ErrorClassification, string) {
	if db.errorClassificator == nil {
		return Unclassified, ""
	}
	return db.errorClassificator.Classify(err)
}

func (db *DB) timestamp() time.Time {
	if db.now != nil {
		return db.now()
	}
	return utcNow()
}

// utcNow truncates to microseconds, the precision both databases keep.
func utcNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
