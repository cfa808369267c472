// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

const (
	userIDParam = "userID"
	todoIDParam = "todoID"
)

// idFromPath parses a numeric path parameter. Range checks are left to the
// services.
func idFromPath(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidPathID, name, raw)
	}
	return id, nil
}

// boolFromQuery reports the parsed value and whether the parameter was sent.
func boolFromQuery(r *http.Request, name string) (value, present bool, err error) {
	query := r.URL.Query()
	if !query.Has(name) {
		return false, false, nil
	}

	raw := query.Get(name)
	value, err = strconv.ParseBool(raw)
	if err != nil {
		return false, true, fmt.Errorf("%w: %s=%q", ErrInvalidQueryParam, name, raw)
	}
	return value, true, nil
}

func timeFromQuery(r *http.Request, name string) (t time.Time, present bool, err error) {
	query := r.URL.Query()
	if !query.Has(name) {
		return time.Time{}, false, nil
	}

	raw := query.Get(name)
	t, err = time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, true, fmt.Errorf("%w: %s=%q, want RFC 3339", ErrInvalidQueryParam, name, raw)
	}
	return t, true, nil
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
