// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidInput:   http.StatusBadRequest,
	service.ErrNotFound:       http.StatusNotFound,
	service.ErrServiceFailure: http.StatusInternalServerError,

	ErrInvalidJSON:        http.StatusBadRequest,
	ErrInvalidPathID:      http.StatusBadRequest,
	ErrInvalidQueryParam:  http.StatusBadRequest,
	ErrMissingQueryParam:  http.StatusBadRequest,
	ErrInvalidGZipPayload: http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the text put into the error body. Causes of
// server-side failures never leave the process.
func messageFromError(err error, status int) string {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		return svcErr.Msg
	}
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, writeErr := utils.WriteJSON(w, models.ErrorResponse{Error: messageFromError(err, status)}, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
