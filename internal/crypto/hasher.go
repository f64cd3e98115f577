// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"github.com/MKhiriev/go-account-gate/internal/config"
	"github.com/MKhiriev/go-account-gate/internal/service"
)

// NewPasswordHasher builds the hasher selected by cfg.PasswordHasher.
func NewPasswordHasher(cfg config.Auth) (service.PasswordHasher, error) {
	var (
		hasher service.PasswordHasher
		err    error
	)

	switch cfg.PasswordHasher {
	case config.PasswordHasherBcrypt:
		hasher, err = NewBcryptAdapter(cfg.BcryptCost)
	case config.PasswordHasherArgon2:
		hasher, err = NewArgon2Adapter(DefaultArgon2Params)
	default:
		err = fmt.Errorf("%w: unknown hasher %q", ErrInvalidHasherParams, cfg.PasswordHasher)
	}
	if err != nil {
		return nil, err
	}

	return hasher, nil
}
