// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	usernameMinLength    = 3
	usernameMaxLength    = 100
	emailMinLength       = 5
	emailMaxLength       = 100
	passwordMinLength    = 6
	passwordMaxLength    = 100
	titleMaxLength       = 100
	descriptionMaxLength = 1000
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	emailPattern    = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
)

// ValidateID checks that id can reference a stored record.
func ValidateID(id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	return nil
}

func ValidateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return ErrEmptyUsername
	}
	if !lengthBetween(username, usernameMinLength, usernameMaxLength) {
		return ErrUsernameLength
	}
	if !usernamePattern.MatchString(username) {
		return ErrUsernameCharacters
	}
	return nil
}

func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmptyEmail
	}
	if !lengthBetween(email, emailMinLength, emailMaxLength) {
		return ErrEmailLength
	}
	if !emailPattern.MatchString(email) {
		return ErrEmailFormat
	}
	return nil
}

// ValidatePassword checks the raw password. Passwords are never trimmed.
func ValidatePassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if !lengthBetween(password, passwordMinLength, passwordMaxLength) {
		return ErrPasswordLength
	}
	return nil
}

func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > titleMaxLength {
		return ErrTitleLength
	}
	return nil
}

// ValidateDescription accepts a missing description.
func ValidateDescription(description *string) error {
	if description == nil {
		return nil
	}
	if utf8.RuneCountInString(*description) > descriptionMaxLength {
		return ErrDescriptionLength
	}
	return nil
}

// ValidateSearchTerm rejects blank search terms.
func ValidateSearchTerm(term string) error {
	if strings.TrimSpace(term) == "" {
		return ErrEmptySearchTerm
	}
	return nil
}

func ValidateTimestamp(ts time.Time) error {
	if ts.IsZero() {
		return ErrZeroTimestamp
	}
	return nil
}

func lengthBetween(s string, minLen, maxLen int) bool {
	n := utf8.RuneCountInString(s)
	return n >= minLen && n <= maxLen
}
