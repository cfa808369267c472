// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit is returned when the user leaves the program from any screen.
var ErrUserQuit = errors.New("вышел из программы")

// TUI runs the interactive screens on top of a [adapter.ServerAdapter].
type TUI struct {
	api       adapter.ServerAdapter
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	programOptions []tea.ProgramOption
}

func New(api adapter.ServerAdapter, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{
		api:            api,
		buildInfo:      buildInfo,
		logger:         log,
		programOptions: []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// SignIn shows the start menu and blocks until the user signs in,
// registers or quits.
func (t *TUI) SignIn(ctx context.Context) (models.User, error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageSignIn:   NewSignInModel(ctx, t.api),
		pageRegister: NewRegisterModel(ctx, t.api),
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, err := tea.NewProgram(root, t.programOptions...).Run()
	if err != nil {
		return models.User{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.quitByUser || result.user.UserID == 0 {
		return models.User{}, ErrUserQuit
	}

	t.logger.Info().Int64("user_id", result.user.UserID).Str("username", result.user.Username).Msg("signed in")
	return result.user, nil
}

// Board shows the todo list of user. logout is true when the user asked to
// switch accounts instead of quitting.
func (t *TUI) Board(ctx context.Context, user models.User) (logout bool, err error) {
	model := NewBoardModel(ctx, t.api, user)
	finalModel, err := tea.NewProgram(model, t.programOptions...).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(*BoardModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.logout {
		t.logger.Info().Int64("user_id", user.UserID).Msg("signed out")
		return true, nil
	}
	return false, nil
}
