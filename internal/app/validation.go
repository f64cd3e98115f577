// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"github.com/MKhiriev/go-account-gate/internal/validators"
	"github.com/MKhiriev/go-account-gate/models"
)

// MakeSignUpValidation returns the sign-up rules in evaluation order.
func MakeSignUpValidation(checker validators.EmailChecker) *validators.Composite {
	rules := make([]validators.Validator, 0, 6)
	for _, field := range []string{
		models.FieldName,
		models.FieldEmail,
		models.FieldPassword,
		models.FieldConfirmPassword,
	} {
		rules = append(rules, validators.Required(field))
	}
	rules = append(rules,
		validators.Equal(models.FieldConfirmPassword, models.FieldPassword),
		validators.Email(models.FieldEmail, checker),
	)

	return validators.NewComposite(rules...)
}

// MakeSignInValidation returns the sign-in rules in evaluation order.
func MakeSignInValidation(checker validators.EmailChecker) *validators.Composite {
	return validators.NewComposite(
		validators.Required(models.FieldEmail),
		validators.Required(models.FieldPassword),
		validators.Email(models.FieldEmail, checker),
	)
}
