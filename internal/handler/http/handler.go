// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-account-gate/internal/config"
	"github.com/MKhiriev/go-account-gate/internal/controller"
	"github.com/MKhiriev/go-account-gate/internal/logger"
	"github.com/MKhiriev/go-account-gate/models"
)

// Controllers groups the decorated controllers served over HTTP.
type Controllers struct {
	SignUp controller.Controller[models.SignUpRequest]
	SignIn controller.Controller[models.Credentials]
}

type Handler struct {
	controllers    Controllers
	metrics        http.Handler
	allowedOrigins []string

	logger *logger.Logger
}

// NewHandler returns a Handler. A nil metrics handler leaves /metrics
// unregistered.
func NewHandler(controllers Controllers, metrics http.Handler, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		controllers:    controllers,
		metrics:        metrics,
		allowedOrigins: cfg.AllowedOrigins,
		logger:         logger,
	}
}
