// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/go-account-gate/internal/store"

// Services groups the use cases exposed to the controllers.
type Services struct {
	Authentication Authentication
	AddAccount     AddAccount
}

// NewServices wires the use cases to the repositories and the hashing and
// token adapters.
func NewServices(storages *store.Storages, hasher PasswordHasher, tokens TokenGenerator) *Services {
	return &Services{
		Authentication: NewAuthentication(storages.Accounts, hasher, tokens),
		AddAccount:     NewAddAccount(hasher, storages.Accounts),
	}
}
