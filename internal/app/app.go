// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"net/http"

	"github.com/MKhiriev/go-account-gate/internal/config"
	handler "github.com/MKhiriev/go-account-gate/internal/handler/http"
)

// NewHTTPHandler builds the HTTP handler serving both account routes.
// metricsHandler may be nil.
func NewHTTPHandler(deps Dependencies, metricsHandler http.Handler, cfg config.Server) *handler.Handler {
	return handler.NewHandler(handler.Controllers{
		SignUp: MakeSignUpController(deps),
		SignIn: MakeSignInController(deps),
	}, metricsHandler, cfg, deps.Logger)
}
