// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the todo server REST API.
//
// [ServerAdapter] decouples the terminal client from the transport. The
// package ships a resty-based implementation ([NewHTTPServerAdapter]).
//
// Non-2xx answers are mapped by mapHTTPError onto the sentinels in errors.go
// so callers can use [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrBadRequest] for 400). The wrapped text is the server's error message.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the todo
// server.
type ServerAdapter interface {
	// Register creates a user and returns it as stored by the server.
	Register(ctx context.Context, newUser models.NewUser) (models.User, error)

	// FindUser looks a user up by username. A missing user is reported as
	// [ErrNotFound].
	FindUser(ctx context.Context, username string) (models.User, error)

	// ListTodos returns the todos of userID. A nil done lists all of them,
	// otherwise only those with the given status.
	ListTodos(ctx context.Context, userID int64, done *bool) ([]models.Todo, error)

	CreateTodo(ctx context.Context, userID int64, newTodo models.NewTodo) (models.Todo, error)
	UpdateTodo(ctx context.Context, todoID int64, update models.TodoUpdate) (models.Todo, error)
	ToggleTodo(ctx context.Context, todoID int64) (models.Todo, error)
	DeleteTodo(ctx context.Context, todoID int64) error

	// DeleteAllTodos removes every todo of userID and returns how many were
	// removed.
	DeleteAllTodos(ctx context.Context, userID int64) (int64, error)

	// CountTodos counts the todos of userID; done filters like in ListTodos.
	CountTodos(ctx context.Context, userID int64, done *bool) (int64, error)

	// Statistics returns the server-wide todo statistics.
	Statistics(ctx context.Context) (models.TodoStatistics, error)

	// ServerVersion returns the version string reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}
