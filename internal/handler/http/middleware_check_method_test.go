// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildMethodRouter mirrors the account routes without controllers.
func buildMethodRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Post("/sign-up", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("signed up"))
	})
	router.Post("/sign-in", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildMethodRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{name: "POST /sign-up passes through", method: http.MethodPost, path: "/sign-up", expectedStatus: http.StatusOK},
		{name: "POST /sign-in passes through", method: http.MethodPost, path: "/sign-in", expectedStatus: http.StatusUnauthorized},
		{name: "GET /metrics passes through", method: http.MethodGet, path: "/metrics", expectedStatus: http.StatusOK},
		{name: "GET /sign-up is hidden", method: http.MethodGet, path: "/sign-up", expectedStatus: http.StatusNotFound},
		{name: "PUT /sign-in is hidden", method: http.MethodPut, path: "/sign-in", expectedStatus: http.StatusNotFound},
		{name: "DELETE /sign-in is hidden", method: http.MethodDelete, path: "/sign-in", expectedStatus: http.StatusNotFound},
		{name: "POST /metrics is hidden", method: http.MethodPost, path: "/metrics", expectedStatus: http.StatusNotFound},
		{name: "unknown route", method: http.MethodPost, path: "/sign-out", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

func TestCheckHTTPMethod_PassThroughBody(t *testing.T) {
	router := buildMethodRouter()

	req := httptest.NewRequest(http.MethodPost, "/sign-up", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "signed up", rr.Body.String())
}

func TestCheckHTTPMethod_ConcurrentRequests(t *testing.T) {
	router := buildMethodRouter()
	const n = 50
	done := make(chan int, n)

	for i := 0; i < n; i++ {
		go func(i int) {
			method := http.MethodPost
			if i%2 == 1 {
				method = http.MethodGet
			}
			req := httptest.NewRequest(method, "/sign-up", nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			done <- rr.Code
		}(i)
	}

	for i := 0; i < n; i++ {
		code := <-done
		assert.True(t, code == http.StatusOK || code == http.StatusNotFound,
			"unexpected status code: %d", code)
	}
}
