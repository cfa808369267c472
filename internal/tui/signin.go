// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SignInModel looks an existing user up by username.
type SignInModel struct {
	ctx context.Context
	api adapter.ServerAdapter

	username   textinput.Model
	submitting bool
	errMsg     string
}

func NewSignInModel(ctx context.Context, api adapter.ServerAdapter) *SignInModel {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 50
	username.Width = 40
	username.Focus()

	return &SignInModel{
		ctx:      ctx,
		api:      api,
		username: username,
	}
}

func (m *SignInModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SignInModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(SignInResult); ok {
		m.submitting = false
		switch {
		case errors.Is(result.Err, adapter.ErrNotFound):
			m.errMsg = "Пользователь не найден"
		case result.Err != nil:
			m.errMsg = humanizeServerUnavailableError(result.Err)
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.reset()
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			username := strings.TrimSpace(m.username.Value())
			if username == "" {
				m.errMsg = "Введите имя пользователя"
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSignIn(username)
		}
	}

	var cmd tea.Cmd
	m.username, cmd = m.username.Update(msg)
	return m, cmd
}

func (m *SignInModel) View() string {
	var b strings.Builder
	b.WriteString("Поле           │ Значение\n")
	b.WriteString("───────────────┼────────────────────────────────────\n")
	b.WriteString("Пользователь   │ [")
	b.WriteString(m.username.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Войти...]\n")
	} else {
		b.WriteString("\n[Войти]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("ВХОД", strings.TrimRight(b.String(), "\n"), "esc: назад │ enter: войти")
}

func (m *SignInModel) cmdSignIn(username string) tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		user, err := api.FindUser(ctx, username)
		return SignInResult{User: user, Err: err}
	}
}

func (m *SignInModel) reset() {
	m.submitting = false
	m.errMsg = ""
	m.username.SetValue("")
}
