// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/tui"
)

var _ UI = (*tui.TUI)(nil)

// App is the client process: a server adapter and a UI driven in a loop.
type App struct {
	api    adapter.ServerAdapter
	ui     UI
	logger *logger.Logger
}

func NewApp(api adapter.ServerAdapter, ui UI, log *logger.Logger) *App {
	return &App{api: api, ui: ui, logger: log}
}

// Run probes the server version and then runs sign-in and the board until
// the user quits. Quitting from any screen is not an error.
func (a *App) Run(ctx context.Context) error {
	version, err := a.api.ServerVersion(ctx)
	if err != nil {
		// The UI reports connectivity problems on every request.
		a.logger.Warn().Err(err).Msg("server version is unavailable")
	} else {
		a.logger.Info().Str("server_version", version).Msg("connected to server")
	}

	for {
		user, err := a.ui.SignIn(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("sign in: %w", err)
		}

		logout, err := a.ui.Board(ctx, user)
		if err != nil {
			return fmt.Errorf("todo board: %w", err)
		}
		if !logout {
			return nil
		}
	}
}
