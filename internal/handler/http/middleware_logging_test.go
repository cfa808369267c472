// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeRequest creates a request whose context logger writes into buf, the
// way withTraceID attaches it.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		path      string
		status    int
		body      string
		writeNone bool
		wantLog   []string
	}{
		{
			name:   "GET 200",
			method: http.MethodGet,
			path:   "/api/todos",
			status: http.StatusOK,
			body:   "[]",
			wantLog: []string{
				`"level":"info"`, `"method":"GET"`, `"uri":"/api/todos"`,
				`"status":200`, `"size":2`, `"duration":`,
			},
		},
		{
			name:    "POST 201",
			method:  http.MethodPost,
			path:    "/api/users",
			status:  http.StatusCreated,
			body:    `{"id":1}`,
			wantLog: []string{`"level":"info"`, `"method":"POST"`, `"status":201`, `"size":8`},
		},
		{
			name:    "client error logged as warn",
			method:  http.MethodGet,
			path:    "/api/todos/x",
			status:  http.StatusBadRequest,
			body:    `{"error":"bad"}`,
			wantLog: []string{`"level":"warn"`, `"status":400`},
		},
		{
			name:    "server error logged as error",
			method:  http.MethodDelete,
			path:    "/api/todos/1",
			status:  http.StatusInternalServerError,
			wantLog: []string{`"level":"error"`, `"status":500`, `"size":0`},
		},
		{
			name:      "nothing written counts as 200",
			method:    http.MethodGet,
			path:      "/",
			writeNone: true,
			wantLog:   []string{`"status":200`, `"size":0`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.writeNone {
					return
				}
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			rec := httptest.NewRecorder()
			newTestHandler().withLogging(next).ServeHTTP(rec, makeRequest(tt.method, tt.path, &buf))

			for _, want := range tt.wantLog {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestLevelForStatus(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, levelForStatus(http.StatusNoContent))
	assert.Equal(t, zerolog.InfoLevel, levelForStatus(http.StatusFound))
	assert.Equal(t, zerolog.WarnLevel, levelForStatus(http.StatusNotFound))
	assert.Equal(t, zerolog.ErrorLevel, levelForStatus(http.StatusServiceUnavailable))
}
