// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a registered account. It is the aggregate root for todos:
// every [Todo] references exactly one user through UserID, and deleting the
// user removes its todos.
//
// PasswordHash is never serialized; the JSON form of a User is the public
// representation handed to API callers.
type User struct {
	// UserID is the surrogate key assigned by the store on creation.
	UserID int64 `json:"id"`

	// Username is unique (case-sensitive), 3–100 characters of
	// letters, digits and underscores.
	Username string `json:"username"`

	// Email is unique and always stored lowercased.
	Email string `json:"email"`

	// PasswordHash is the encoded salted hash of the user's password.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// IsActive reports whether the account carries both a username and an email.
func (u User) IsActive() bool {
	return !isBlank(u.Username) && !isBlank(u.Email)
}

// NewUser is the registration input.
type NewUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserUpdate is a partial update of a user. Nil fields are left untouched.
type UserUpdate struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
}
