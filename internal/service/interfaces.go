// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UserService manages user accounts. Every failure is an [*Error]; use
// [KindOf] to tell invalid input, missing records and store failures apart.
type UserService interface {
	// Register validates and normalizes newUser, rejects a taken username or
	// email and stores the user with a hashed password.
	Register(ctx context.Context, newUser *models.NewUser) (models.User, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
	// GetByUsername reports absence with found == false, not with an error.
	GetByUsername(ctx context.Context, username string) (user models.User, found bool, err error)
	// GetByEmail reports absence with found == false, not with an error.
	GetByEmail(ctx context.Context, email string) (user models.User, found bool, err error)
	ListAll(ctx context.Context) ([]models.User, error)
	// Update applies the non-nil fields of update that differ from the
	// stored values.
	Update(ctx context.Context, id int64, update *models.UserUpdate) (models.User, error)
	// Delete removes the user together with all of its todos.
	Delete(ctx context.Context, id int64) error
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	CountAll(ctx context.Context) (int64, error)
	// CountCreatedAfter counts users created at or after t.
	CountCreatedAfter(ctx context.Context, t time.Time) (int64, error)
	Search(ctx context.Context, term string) ([]models.User, error)
	// IsActive returns false for a missing user.
	IsActive(ctx context.Context, id int64) (bool, error)
	Statistics(ctx context.Context) (models.UserStatistics, error)
}

// TodoService manages the todos of existing users.
type TodoService interface {
	Create(ctx context.Context, newTodo *models.NewTodo, userID int64) (models.Todo, error)
	GetByID(ctx context.Context, id int64) (models.Todo, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Todo, error)
	ListByUserAndStatus(ctx context.Context, userID int64, done bool) ([]models.Todo, error)
	ListAll(ctx context.Context) ([]models.Todo, error)
	Update(ctx context.Context, id int64, update *models.TodoUpdate) (models.Todo, error)
	ToggleDone(ctx context.Context, id int64) (models.Todo, error)
	Delete(ctx context.Context, id int64) error
	// DeleteAllForUser removes every todo of the user and returns how many
	// were removed.
	DeleteAllForUser(ctx context.Context, userID int64) (int64, error)
	CountAll(ctx context.Context) (int64, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
	CountDoneByUser(ctx context.Context, userID int64) (int64, error)
	Statistics(ctx context.Context) (models.TodoStatistics, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
