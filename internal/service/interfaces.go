// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-account-gate/models"
)

// Encrypter turns a plaintext password into a storable hash.
type Encrypter interface {
	Encrypt(ctx context.Context, plain string) (string, error)
}

// HashComparer reports whether plain matches a hash produced by an [Encrypter].
type HashComparer interface {
	Compare(ctx context.Context, plain, hash string) (bool, error)
}

// PasswordHasher is implemented by adapters that both hash and compare.
type PasswordHasher interface {
	Encrypter
	HashComparer
}

// TokenGenerator issues an access token for the account identified by
// subjectID.
type TokenGenerator interface {
	Generate(ctx context.Context, subjectID string) (string, error)
}

// Authentication exchanges credentials for an access token.
type Authentication interface {
	// Auth returns ok=false with an empty token when the email is unknown or
	// the password does not match. err is reserved for collaborator failures.
	Auth(ctx context.Context, credentials models.Credentials) (token string, ok bool, err error)
}

// AddAccount registers a new account.
type AddAccount interface {
	Add(ctx context.Context, params models.AddAccountParams) (models.Account, error)
}
