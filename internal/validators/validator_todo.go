// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/models"
)

const (
	FieldTitle       = "title"
	FieldDescription = "description"
)

type TodoValidator struct {
}

func NewTodoValidator() Validator {
	return &TodoValidator{}
}

func (v *TodoValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewTodo:
		return v.validateNewTodo(ctx, value, fields...)
	case *models.NewTodo:
		if value == nil {
			return ErrNilInput
		}
		return v.validateNewTodo(ctx, *value, fields...)

	case models.TodoUpdate:
		return v.validateTodoUpdate(ctx, value, fields...)
	case *models.TodoUpdate:
		if value == nil {
			return ErrNilInput
		}
		return v.validateTodoUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *TodoValidator) validateNewTodo(ctx context.Context, in models.NewTodo, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription}
	}

	for _, field := range fields {
		switch field {
		case FieldTitle:
			if err := ValidateTitle(in.Title); err != nil {
				return err
			}
		case FieldDescription:
			if err := ValidateDescription(in.Description); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *TodoValidator) validateTodoUpdate(ctx context.Context, in models.TodoUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription}
	}

	for _, field := range fields {
		switch field {
		case FieldTitle:
			if in.Title == nil {
				continue
			}
			if err := ValidateTitle(*in.Title); err != nil {
				return err
			}
		case FieldDescription:
			if err := ValidateDescription(in.Description); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}
