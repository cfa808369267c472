// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive part of the client. It is implemented by the
// terminal UI.
type UI interface {
	// SignIn blocks until a user is signed in.
	SignIn(ctx context.Context) (models.User, error)
	// Board shows the todo list of user and reports whether the user
	// signed out.
	Board(ctx context.Context, user models.User) (logout bool, err error)
}
