// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestStatusAndMessageFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "invalid input",
			err:         &service.Error{Kind: service.KindInvalidInput, Msg: "username is required"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "username is required",
		},
		{
			name:        "not found",
			err:         &service.Error{Kind: service.KindNotFound, Msg: "todo not found with id: 3"},
			wantStatus:  http.StatusNotFound,
			wantMessage: "todo not found with id: 3",
		},
		{
			name:        "service failure keeps cause private",
			err:         &service.Error{Kind: service.KindServiceFailure, Msg: "error deleting todo", Cause: errors.New("pq: deadlock")},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "error deleting todo",
		},
		{
			name:        "wrapped service error",
			err:         fmt.Errorf("outer: %w", &service.Error{Kind: service.KindNotFound, Msg: "user not found with id: 1"}),
			wantStatus:  http.StatusNotFound,
			wantMessage: "user not found with id: 1",
		},
		{
			name:        "request error",
			err:         fmt.Errorf("%w: userID=%q", ErrInvalidPathID, "x"),
			wantStatus:  http.StatusBadRequest,
			wantMessage: `invalid id in path: userID="x"`,
		},
		{
			name:        "unknown error",
			err:         errors.New("secret internals"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := statusFromError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, messageFromError(tt.err, status))
		})
	}
}
