// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package controller

import (
	"context"

	"github.com/MKhiriev/go-account-gate/internal/result"
	"github.com/MKhiriev/go-account-gate/internal/validators"
	"github.com/MKhiriev/go-account-gate/models"
)

// validate runs validation and maps a failure to an outcome. ok is false
// when the returned outcome must be sent as-is.
func validate(ctx context.Context, validation validators.Validator, input validators.Input) (models.Outcome, bool) {
	_, err := result.Try(func() (struct{}, error) {
		return struct{}{}, validation.Validate(ctx, input)
	})
	if err == nil {
		return models.Outcome{}, true
	}

	if vErr, ok := validators.AsValidationError(err); ok {
		return BadRequest(vErr), false
	}
	return ServerError(err), false
}
