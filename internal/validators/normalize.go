// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"strings"

	"github.com/MKhiriev/go-todo-keeper/models"
)

func NormalizeUsername(username string) string {
	return strings.TrimSpace(username)
}

// NormalizeEmail trims and lowercases an email. Stored emails are always in
// this form, so lookups must use it too.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func NormalizeTitle(title string) string {
	return strings.TrimSpace(title)
}

func NormalizeDescription(description *string) *string {
	if description == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*description)
	return &trimmed
}

// NormalizeNewUser returns a copy of in with username and email normalized.
// The password is left untouched.
func NormalizeNewUser(in models.NewUser) models.NewUser {
	return models.NewUser{
		Username: NormalizeUsername(in.Username),
		Email:    NormalizeEmail(in.Email),
		Password: in.Password,
	}
}

func NormalizeUserUpdate(in models.UserUpdate) models.UserUpdate {
	var out models.UserUpdate
	if in.Username != nil {
		username := NormalizeUsername(*in.Username)
		out.Username = &username
	}
	if in.Email != nil {
		email := NormalizeEmail(*in.Email)
		out.Email = &email
	}
	return out
}

func NormalizeNewTodo(in models.NewTodo) models.NewTodo {
	return models.NewTodo{
		Title:       NormalizeTitle(in.Title),
		Description: NormalizeDescription(in.Description),
		Done:        in.Done,
	}
}

func NormalizeTodoUpdate(in models.TodoUpdate) models.TodoUpdate {
	out := models.TodoUpdate{
		Description: NormalizeDescription(in.Description),
		Done:        in.Done,
	}
	if in.Title != nil {
		title := NormalizeTitle(*in.Title)
		out.Title = &title
	}
	return out
}
