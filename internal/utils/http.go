// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data and writes it with the given status code and an
// "application/json" content type.
//
// If marshaling fails nothing but a plain 500 is written and the wrapped
// marshal error is returned. Otherwise it returns the result of the body
// write.
//
// Example usage:
//
//	WriteJSON(w, models.CountResponse{Count: 3}, http.StatusOK)
//	WriteJSON(w, models.ErrorResponse{Error: "todo not found with id: 7"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
