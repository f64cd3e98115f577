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

// SignUpController registers a new account.
type SignUpController struct {
	validation validators.Validator
	addAccount service.AddAccount
}

// NewSignUpController returns a [SignUpController].
func NewSignUpController(validation validators.Validator, addAccount service.AddAccount) *SignUpController {
	return &SignUpController{
		validation: validation,
		addAccount: addAccount,
	}
}

// Handle validates req, adds the account and responds with its public view.
func (c *SignUpController) Handle(ctx context.Context, req models.SignUpRequest) models.Outcome {
	if outcome, ok := validate(ctx, c.validation, req.ValidationInput()); !ok {
		return outcome
	}

	account, err := result.Await(result.TryAsync(func() (models.Account, error) {
		return c.addAccount.Add(ctx, req.AddAccountParams())
	}))
	if err != nil {
		return ServerError(err)
	}

	return OK(account.View())
}
