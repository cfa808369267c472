// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists [models.User] records in the "users" table.
//
// Lookups of a single record return [ErrUserNotFound] when nothing matches.
// Writes that collide with the unique constraints return
// [ErrUsernameAlreadyExists] or [ErrEmailAlreadyExists].
type UserRepository interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	FindByID(ctx context.Context, id int64) (models.User, error)
	FindByUsername(ctx context.Context, username string) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Update saves username and email of an existing user.
	Update(ctx context.Context, user models.User) (models.User, error)
	// DeleteByID removes the user; the user's todos go with it.
	DeleteByID(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	// CountCreatedAfter counts users with created_at at or after t.
	CountCreatedAfter(ctx context.Context, t time.Time) (int64, error)
	// Search matches term as a case-insensitive substring of username or
	// email. LIKE wildcards in term are matched literally.
	Search(ctx context.Context, term string) ([]models.User, error)
	// CountActive counts users with a non-blank username and email.
	CountActive(ctx context.Context) (int64, error)
}

// TodoRepository persists [models.Todo] records in the "todos" table.
//
// Lookups of a single record return [ErrTodoNotFound] when nothing matches.
// Writes referencing a missing owner return [ErrTodoOwnerNotFound].
type TodoRepository interface {
	Create(ctx context.Context, todo models.Todo) (models.Todo, error)
	FindByID(ctx context.Context, id int64) (models.Todo, error)
	FindAll(ctx context.Context) ([]models.Todo, error)
	FindByUser(ctx context.Context, userID int64) ([]models.Todo, error)
	FindByUserAndDone(ctx context.Context, userID int64, done bool) ([]models.Todo, error)
	// Update saves title, description and done of an existing todo.
	Update(ctx context.Context, todo models.Todo) (models.Todo, error)
	DeleteByID(ctx context.Context, id int64) error
	// DeleteAll removes the listed todos and reports how many were removed.
	DeleteAll(ctx context.Context, ids []int64) (int64, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
	CountByDone(ctx context.Context, done bool) (int64, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
	CountByUserAndDone(ctx context.Context, userID int64, done bool) (int64, error)
}

// ErrorClassificator maps driver-specific errors onto the constraint
// violations the repositories care about.
type ErrorClassificator interface {
	// Classify returns the kind of violation err represents and, when known,
	// the violated constraint or column.
	Classify(err error) (ErrorClassification, string)
}
