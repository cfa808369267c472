// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNilInput  = errors.New("input cannot be null")
	ErrInvalidID = errors.New("id must be a positive number")

	ErrEmptyUsername      = errors.New("username cannot be empty")
	ErrUsernameLength     = errors.New("username length must be between 3 and 100 characters")
	ErrUsernameCharacters = errors.New("username can only contain letters, numbers, and underscores")

	ErrEmptyEmail  = errors.New("email cannot be empty")
	ErrEmailLength = errors.New("email length must be between 5 and 100 characters")
	ErrEmailFormat = errors.New("invalid email format")

	ErrEmptyPassword  = errors.New("password cannot be empty")
	ErrPasswordLength = errors.New("password length must be between 6 and 100 characters")

	ErrEmptyTitle        = errors.New("todo title cannot be empty")
	ErrTitleLength       = errors.New("todo title length must be between 1 and 100 characters")
	ErrDescriptionLength = errors.New("todo description cannot exceed 1000 characters")
	ErrEmptySearchTerm   = errors.New("search term cannot be empty")
	ErrZeroTimestamp     = errors.New("timestamp cannot be empty")
)
