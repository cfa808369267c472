// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-todo-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo asks [RootModel] to switch to Page. A non-nil Payload is
// delivered to the new page as its first message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// SignInResult finishes the sign-in flow when Err is nil.
type SignInResult struct {
	User models.User
	Err  error
}

type todosLoadedMsg struct {
	todos []models.Todo
	err   error
}

type countsLoadedMsg struct {
	total int64
	done  int64
	err   error
}

// todoChangedMsg reports a finished create, toggle or delete.
type todoChangedMsg struct {
	status string
	err    error
}

type copiedMsg struct {
	title string
	err   error
}

type clearStatusMsg struct{}
