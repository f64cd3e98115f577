// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators implements the request validation engine: atomic rules
// and an ordered composite evaluated with first-failure semantics.
//
// Core concepts:
//   - Validator: anything that checks an [Input] and returns at most one error.
//   - Rule: a tagged rule variant (required field, fields equal, email syntax)
//     evaluated through a single dispatch method.
//   - Composite: an ordered sequence of validators; the first failure wins and
//     later validators are not invoked.
//
// Rules report client mistakes as [*ValidationError] values. Any other error
// returned from Validate is a collaborator failure (for example, the email
// checker failed) and must be treated by the caller as a server failure.
package validators

//go:generate mockgen -source=interfaces.go -destination=../mock/validators_mock.go -package=mock

import "context"

// Input is the typed key-value view of a request body that validators
// operate on. A missing key and an empty value are treated the same.
type Input map[string]string

// Validator checks an input and returns nil, a [*ValidationError], or a
// collaborator failure.
type Validator interface {
	Validate(ctx context.Context, input Input) error
}

// EmailChecker reports whether a string is a syntactically valid email.
// Implementations are pure but may fail on malformed input.
type EmailChecker interface {
	IsValid(email string) (bool, error)
}
