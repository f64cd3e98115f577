// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the work factor used when none is configured.
const DefaultBcryptCost = 10

// BcryptAdapter hashes and compares passwords with bcrypt.
type BcryptAdapter struct {
	cost int
}

// NewBcryptAdapter returns a [BcryptAdapter] using cost, which must lie
// within bcrypt's bounds.
func NewBcryptAdapter(cost int) (*BcryptAdapter, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: bcrypt cost %d", ErrInvalidHasherParams, cost)
	}

	return &BcryptAdapter{cost: cost}, nil
}

// Encrypt returns the bcrypt hash of plain.
func (a *BcryptAdapter) Encrypt(_ context.Context, plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), a.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password with bcrypt: %w", err)
	}

	return string(hash), nil
}

// Compare reports whether plain matches hash. A mismatch is not an error.
func (a *BcryptAdapter) Compare(_ context.Context, plain, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("error comparing bcrypt hash: %w", err)
	}
}
