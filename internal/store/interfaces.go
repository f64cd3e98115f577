// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-account-gate/models"
)

// AccountRepository persists accounts keyed by a unique email.
type AccountRepository interface {
	// LoadByEmail returns the account registered under email, or nil with a
	// nil error when there is none.
	LoadByEmail(ctx context.Context, email string) (*models.Account, error)
	// Add stores a new account and returns it with its assigned id.
	Add(ctx context.Context, account models.NewAccount) (models.Account, error)
}

// LogErrorRepository records the detail of unexpected server errors.
type LogErrorRepository interface {
	LogError(ctx context.Context, detail string) error
}

// ErrorClassificator decides how a driver error is handled.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}

// IDGenerator issues identifiers for new rows.
type IDGenerator interface {
	Generate() string
}
