// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package controller

import (
	"context"

	"github.com/MKhiriev/go-account-gate/internal/result"
	"github.com/MKhiriev/go-account-gate/internal/service"
	"github.com/MKhiriev/go-account-gate/internal/validators"
	"github.com/MKhiriev/go-account-gate/models"
)

// SignInController exchanges credentials for an access token.
type SignInController struct {
	validation     validators.Validator
	authentication service.Authentication
}

// NewSignInController returns a [SignInController].
func NewSignInController(validation validators.Validator, authentication service.Authentication) *SignInController {
	return &SignInController{
		validation:     validation,
		authentication: authentication,
	}
}

type authResult struct {
	token string
	ok    bool
}

// Handle validates credentials and authenticates them. Unknown accounts and
// wrong passwords are indistinguishable: both yield 401.
func (c *SignInController) Handle(ctx context.Context, credentials models.Credentials) models.Outcome {
	if outcome, ok := validate(ctx, c.validation, credentials.ValidationInput()); !ok {
		return outcome
	}

	auth, err := result.Await(result.TryAsync(func() (authResult, error) {
		token, ok, err := c.authentication.Auth(ctx, credentials)
		return authResult{token: token, ok: ok}, err
	}))
	if err != nil {
		return ServerError(err)
	}
	if !auth.ok || auth.token == "" {
		return Unauthorized()
	}

	return OK(models.AccessToken{AccessToken: auth.token})
}
