// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

const emailTag = "email"

// EmailValidatorAdapter checks email syntax with the "email" tag of
// go-playground/validator. It is safe for concurrent use.
type EmailValidatorAdapter struct {
	validate *validator.Validate
}

// NewEmailValidatorAdapter returns an [EmailValidatorAdapter].
func NewEmailValidatorAdapter() *EmailValidatorAdapter {
	return &EmailValidatorAdapter{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// IsValid reports whether email is syntactically valid. A rejected address
// is not an error; any other failure of the validator is.
func (a *EmailValidatorAdapter) IsValid(email string) (bool, error) {
	err := a.validate.Var(email, emailTag)
	if err == nil {
		return true, nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return false, nil
	}

	return false, fmt.Errorf("error checking email syntax: %w", err)
}
