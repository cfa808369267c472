// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input rules of the todo keeper: username,
// email and password rules for users, and title and description rules for
// todos.
//
// Validators work on already normalized input. The Normalize* helpers apply
// the trimming and lowercasing the services perform before validation and
// before any store lookup, so a value is always checked in the shape it will
// be persisted in.
//
// Every rule violation is one of the sentinel errors from errors.go, which
// lets callers match a concrete rule with errors.Is.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
