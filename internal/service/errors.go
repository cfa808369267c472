// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every error returned by the services.
type ErrorKind int

const (
	// KindInvalidInput means the caller supplied data that breaks a rule
	// (missing value, bad format, length out of range, duplicate username or
	// email). Retrying with the same input fails again.
	KindInvalidInput ErrorKind = iota + 1

	// KindNotFound means a record referenced by id does not exist.
	KindNotFound

	// KindServiceFailure means the store failed. The original fault is kept
	// as the cause.
	KindServiceFailure
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid input"
	case KindNotFound:
		return "not found"
	case KindServiceFailure:
		return "service failure"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Sentinels matching each [ErrorKind] with [errors.Is].
var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("not found")
	ErrServiceFailure = errors.New("service failure")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Error is the concrete error returned by service operations.
//
// Msg is safe to show to API callers. Cause is the violated rule for
// invalid input and the store fault for service failures; it takes part in
// [errors.Is] and [errors.As] together with the sentinel of Kind.
type Error struct {
	Kind  ErrorKind
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	if e.Kind == KindServiceFailure && e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.Msg, ErrServiceFailure, e.Cause)
	}
	return e.Msg
}

func (e *Error) Unwrap() []error {
	errs := []error{e.Kind.sentinel()}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindInvalidInput:
		return ErrInvalidInput
	case KindNotFound:
		return ErrNotFound
	}
	return ErrServiceFailure
}

// KindOf reports the kind of err. Errors that did not come from a service
// are treated as service failures.
func KindOf(err error) ErrorKind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}

	switch {
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	}
	return KindServiceFailure
}

// Message returns the caller-facing text of err. Store causes of service
// failures are left out.
func Message(err error) string {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Msg
	}
	return err.Error()
}

func invalidInput(rule error) error {
	return &Error{Kind: KindInvalidInput, Msg: rule.Error(), Cause: rule}
}

// duplicate reports a uniqueness violation, found either by the fast-path
// check or by the unique constraint at write time.
func duplicate(cause error, format string, args ...any) error {
	return &Error{Kind: KindInvalidInput, Msg: fmt.Sprintf(format, args...), Cause: cause}
}

func notFound(cause error, format string, args ...any) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...), Cause: cause}
}

func failure(msg string, cause error) error {
	return &Error{Kind: KindServiceFailure, Msg: msg, Cause: cause}
}
