// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

// echoBody answers with the request body it received.
var echoBody = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("X-Content-Encoding-Seen", r.Header.Get("Content-Encoding"))
	w.Write(body)
})

func TestWithGZipRequest(t *testing.T) {
	const payload = `{"title":"buy milk"}`

	tests := []struct {
		name            string
		body            func(t *testing.T) io.Reader
		contentEncoding string
		wantStatus      int
		wantBody        string
	}{
		{
			name:            "gzip body is inflated",
			body:            func(t *testing.T) io.Reader { return bytes.NewReader(gzipBytes(t, payload)) },
			contentEncoding: "gzip",
			wantStatus:      http.StatusOK,
			wantBody:        payload,
		},
		{
			name:       "plain body is passed through",
			body:       func(*testing.T) io.Reader { return strings.NewReader(payload) },
			wantStatus: http.StatusOK,
			wantBody:   payload,
		},
		{
			name:            "broken gzip body is rejected",
			body:            func(*testing.T) io.Reader { return strings.NewReader("definitely not gzip") },
			contentEncoding: "gzip",
			wantStatus:      http.StatusBadRequest,
			wantBody:        `{"error":"invalid gzip data"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/users/1/todos", tt.body(t))
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}

			rec := httptest.NewRecorder()
			withGZipRequest(echoBody).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
			assert.Empty(t, rec.Header().Get("X-Content-Encoding-Seen"))
		})
	}
}

func TestPooledGZipBody_CloseTwice(t *testing.T) {
	zr, err := gzip.NewReader(bytes.NewReader(gzipBytes(t, "x")))
	require.NoError(t, err)

	body := &pooledGZipBody{Reader: zr, source: io.NopCloser(strings.NewReader(""))}

	assert.NoError(t, body.Close())
	assert.NoError(t, body.Close())
}
