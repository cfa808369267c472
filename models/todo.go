// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// Todo is a single task owned by a user.
type Todo struct {
	// TodoID is the surrogate key assigned by the store on creation.
	TodoID int64 `json:"id"`

	// UserID references the owning [User]. Always set.
	UserID int64 `json:"user_id"`

	// Title is required, 1–100 characters.
	Title string `json:"title"`

	// Description is optional, at most 1000 characters.
	Description *string `json:"description,omitempty"`

	Done bool `json:"done"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Todo model.
func (t Todo) TableName() string {
	return "todos"
}

// Toggle flips the done flag.
func (t *Todo) Toggle() {
	t.Done = !t.Done
}

// NewTodo is the creation input for a todo.
type NewTodo struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Done        bool    `json:"done"`
}

// TodoUpdate is a partial update of a todo. Nil fields are left untouched.
type TodoUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Done        *bool   `json:"done,omitempty"`
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
