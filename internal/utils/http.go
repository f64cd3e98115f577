// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it with statusCode.
//
// A nil data writes the status line only, with no body, which is how an
// unauthorized outcome is sent. If marshaling fails, it responds with
// 500 Internal Server Error and returns a wrapped error.
//
// Returns the number of body bytes written.
//
// Example usage:
//
//	WriteJSON(w, models.AccessToken{AccessToken: token}, http.StatusOK)
//	WriteJSON(w, nil, http.StatusUnauthorized)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	if data == nil {
		w.WriteHeader(statusCode)
		return 0, nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
