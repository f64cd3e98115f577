// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrInvalidHasherParams is returned by hasher constructors for
	// out-of-range tuning parameters.
	ErrInvalidHasherParams = errors.New("invalid password hasher parameters")
	// ErrMalformedHash is returned when a stored hash cannot be decoded.
	ErrMalformedHash = errors.New("malformed password hash")
)
