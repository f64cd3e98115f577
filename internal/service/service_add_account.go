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

type addAccountService struct {
	encrypter Encrypter
	accounts  store.AccountRepository
}

// NewAddAccount constructs an [AddAccount] use case that hashes the password
// with encrypter before handing the account to accounts.
func NewAddAccount(encrypter Encrypter, accounts store.AccountRepository) AddAccount {
	return &addAccountService{
		encrypter: encrypter,
		accounts:  accounts,
	}
}

// Add implements [AddAccount]. The returned account carries the id assigned
// by the repository. The plaintext password is never logged.
func (s *addAccountService) Add(ctx context.Context, params models.AddAccountParams) (models.Account, error) {
	log := logger.FromContext(ctx)

	hash, err := s.encrypter.Encrypt(ctx, params.Password)
	if err != nil {
		log.Err(err).Str("func", "*addAccountService.Add").Msg("password hashing failed")
		return models.Account{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	account, err := s.accounts.Add(ctx, models.NewAccount{
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: hash,
	})
	if err != nil {
		log.Err(err).Str("func", "*addAccountService.Add").Str("email", params.Email).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("%w: %w", ErrAddingAccount, err)
	}

	log.Info().Str("func", "*addAccountService.Add").Str("account_id", account.ID).Msg("account created")
	return account, nil
}
