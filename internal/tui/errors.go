// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
)

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	// Rejected input: the server message is already user-facing.
	if errors.Is(err, adapter.ErrBadRequest) {
		return strings.TrimPrefix(err.Error(), adapter.ErrBadRequest.Error()+": ")
	}
	if errors.Is(err, adapter.ErrInternalServerError) {
		return "Внутренняя ошибка сервера"
	}

	return err.Error()
}
