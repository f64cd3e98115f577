// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"github.com/MKhiriev/go-account-gate/internal/controller"
	"github.com/MKhiriev/go-account-gate/internal/logger"
	"github.com/MKhiriev/go-account-gate/internal/service"
	"github.com/MKhiriev/go-account-gate/internal/store"
	"github.com/MKhiriev/go-account-gate/internal/validators"
	"github.com/MKhiriev/go-account-gate/models"
)

// Route labels used for metrics.
const (
	RouteSignUp = "sign-up"
	RouteSignIn = "sign-in"
)

// Dependencies are the collaborators shared by every controller.
type Dependencies struct {
	Services     *service.Services
	Storages     *store.Storages
	EmailChecker validators.EmailChecker

	// Recorder is optional; nil disables the metrics decorator.
	Recorder controller.OutcomeRecorder
	Logger   *logger.Logger
}

// MakeSignUpController builds the sign-up controller wrapped, outermost
// first, in the metrics and logging decorators.
func MakeSignUpController(deps Dependencies) controller.Controller[models.SignUpRequest] {
	var c controller.Controller[models.SignUpRequest] = controller.NewSignUpController(
		MakeSignUpValidation(deps.EmailChecker),
		deps.Services.AddAccount,
	)
	return decorate(c, RouteSignUp, deps)
}

// MakeSignInController builds the sign-in controller with the same
// decorators as [MakeSignUpController].
func MakeSignInController(deps Dependencies) controller.Controller[models.Credentials] {
	var c controller.Controller[models.Credentials] = controller.NewSignInController(
		MakeSignInValidation(deps.EmailChecker),
		deps.Services.Authentication,
	)
	return decorate(c, RouteSignIn, deps)
}

func decorate[Req any](c controller.Controller[Req], route string, deps Dependencies) controller.Controller[Req] {
	c = controller.NewLogControllerDecorator(c, deps.Storages.ErrorLogs, deps.Logger)
	if deps.Recorder != nil {
		c = controller.NewMetricsControllerDecorator(c, route, deps.Recorder)
	}
	return c
}
