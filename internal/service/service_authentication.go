// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-account-gate/internal/logger"
	"github.com/MKhiriev/go-account-gate/internal/store"
	"github.com/MKhiriev/go-account-gate/models"
)

// authenticationService is the concrete implementation of [Authentication].
// It looks the account up by email, compares the password against the
// stored hash and issues a token, strictly in that order.
type authenticationService struct {
	accounts store.AccountRepository
	comparer HashComparer
	tokens   TokenGenerator
}

// NewAuthentication constructs an [Authentication] use case.
func NewAuthentication(accounts store.AccountRepository, comparer HashComparer, tokens TokenGenerator) Authentication {
	return &authenticationService{
		accounts: accounts,
		comparer: comparer,
		tokens:   tokens,
	}
}

// Auth implements [Authentication].
//
// A later step never runs when an earlier one misses or fails:
//   - unknown email → ("", false, nil), Compare and Generate are skipped;
//   - wrong password → ("", false, nil), Generate is skipped;
//   - any collaborator error → wrapped and returned.
func (a *authenticationService) Auth(ctx context.Context, credentials models.Credentials) (string, bool, error) {
	log := logger.FromContext(ctx)

	account, err := a.accounts.LoadByEmail(ctx, credentials.Email)
	if err != nil {
		log.Err(err).Str("func", "*authenticationService.Auth").Msg("account lookup failed")
		return "", false, fmt.Errorf("%w: %w", ErrLoadingAccount, err)
	}
	if account == nil {
		log.Debug().Str("func", "*authenticationService.Auth").Msg("no account for email")
		return "", false, nil
	}

	matches, err := a.comparer.Compare(ctx, credentials.Password, account.PasswordHash)
	if err != nil {
		log.Err(err).Str("func", "*authenticationService.Auth").Msg("password comparison failed")
		return "", false, fmt.Errorf("%w: %w", ErrComparingPassword, err)
	}
	if !matches {
		log.Debug().Str("func", "*authenticationService.Auth").Str("account_id", account.ID).Msg("password mismatch")
		return "", false, nil
	}

	token, err := a.tokens.Generate(ctx, account.ID)
	if err != nil {
		log.Err(err).Str("func", "*authenticationService.Auth").Str("account_id", account.ID).Msg("token generation failed")
		return "", false, fmt.Errorf("%w: %w", ErrGeneratingToken, err)
	}

	return token, true, nil
}
