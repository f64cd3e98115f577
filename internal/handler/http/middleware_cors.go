// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/rs/cors"
)

var (
	corsAllowedMethods = []string{
		http.MethodGet,
		http.MethodPost,
		http.MethodPut,
		http.MethodDelete,
		http.MethodOptions,
	}
	corsAllowedHeaders = []string{"Content-Type", "Authorization"}
)

// withCORS answers preflight requests and stamps CORS headers for the
// configured origins. An empty list or "*" allows any origin.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: h.allowedOrigins,
		AllowedMethods: corsAllowedMethods,
		AllowedHeaders: corsAllowedHeaders,
	}).Handler(next)
}
