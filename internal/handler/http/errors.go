// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request errors detected before a service is called. All of them answer
// 400 Bad Request.
var (
	ErrInvalidJSON        = errors.New("invalid JSON was passed")
	ErrInvalidPathID      = errors.New("invalid id in path")
	ErrInvalidQueryParam  = errors.New("invalid query parameter")
	ErrMissingQueryParam  = errors.New("missing query parameter")
	ErrInvalidGZipPayload = errors.New("invalid gzip data")
)
