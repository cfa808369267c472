// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	writeText(w, serverVersion)
}

func (h *Handler) home(w http.ResponseWriter, _ *http.Request) {
	writeText(w, "Hello, World!")
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeText(w, "OK")
}

func writeText(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(text))
}
