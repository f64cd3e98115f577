// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrLoadingAccount wraps failures of the account lookup.
	ErrLoadingAccount = errors.New("error loading account")
	// ErrComparingPassword wraps failures of the hash comparison.
	ErrComparingPassword = errors.New("error comparing password")
	// ErrGeneratingToken wraps failures of the token generator.
	ErrGeneratingToken = errors.New("error generating token")
	// ErrHashingPassword wraps failures of the password hasher.
	ErrHashingPassword = errors.New("error hashing password")
	// ErrAddingAccount wraps failures of the account insert.
	ErrAddingAccount = errors.New("error adding account")
)
