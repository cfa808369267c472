// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/models"
)

const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
)

type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewUser:
		return v.validateNewUser(ctx, value, fields...)
	case *models.NewUser:
		if value == nil {
			return ErrNilInput
		}
		return v.validateNewUser(ctx, *value, fields...)

	case models.UserUpdate:
		return v.validateUserUpdate(ctx, value, fields...)
	case *models.UserUpdate:
		if value == nil {
			return ErrNilInput
		}
		return v.validateUserUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateNewUser(ctx context.Context, in models.NewUser, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldUsername:
			if err := ValidateUsername(in.Username); err != nil {
				return err
			}
		case FieldEmail:
			if err := ValidateEmail(in.Email); err != nil {
				return err
			}
		case FieldPassword:
			if err := ValidatePassword(in.Password); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

// validateUserUpdate checks only the fields present in the update.
func (v *UserValidator) validateUserUpdate(ctx context.Context, in models.UserUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail}
	}

	for _, field := range fields {
		switch field {
		case FieldUsername:
			if in.Username == nil {
				continue
			}
			if err := ValidateUsername(*in.Username); err != nil {
				return err
			}
		case FieldEmail:
			if in.Email == nil {
				continue
			}
			if err := ValidateEmail(*in.Email); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}
