// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the todo server.
//
// It wires chi routes for users and todos, decodes JSON requests, maps
// service errors to HTTP status codes and runs the request middleware:
// trace ids, access logging, panic recovery, request timeouts and gzip in
// both directions.
package http
