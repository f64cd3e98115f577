// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-account-gate/internal/logger"
	"github.com/MKhiriev/go-account-gate/models"
)

// accountRepository is the SQL implementation of [AccountRepository] over
// the "accounts" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	db  *DB
	ids IDGenerator
	now func() time.Time
}

// NewAccountRepository constructs an [AccountRepository] backed by db. New
// accounts get their id from ids.
func NewAccountRepository(db *DB, ids IDGenerator, log *logger.Logger) AccountRepository {
	log.Debug().Msg("creating account repository")
	return &accountRepository{
		db:  db,
		ids: ids,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// LoadByEmail returns the account registered under email. A missing row is
// not an error: it yields (nil, nil).
func (r *accountRepository) LoadByEmail(ctx context.Context, email string) (*models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLoadAccountByEmailQuery(r.db.builder, email)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.LoadByEmail").Msg("error building query")
		return nil, err
	}

	var account models.Account
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, query, args...).
			Scan(&account.ID, &account.Name, &account.Email, &account.PasswordHash, &account.CreatedAt)
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		log.Err(err).Str("func", "*accountRepository.LoadByEmail").Msg("error loading account")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return &account, nil
}

// Add inserts a new account with a freshly generated id and returns the
// stored representation.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *accountRepository) Add(ctx context.Context, newAccount models.NewAccount) (models.Account, error) {
	log := logger.FromContext(ctx)

	account := models.Account{
		ID:           r.ids.Generate(),
		Name:         newAccount.Name,
		Email:        newAccount.Email,
		PasswordHash: newAccount.PasswordHash,
		CreatedAt:    r.now(),
	}

	query, args, err := buildInsertAccountQuery(r.db.builder, account)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.Add").Msg("error building query")
		return models.Account{}, err
	}

	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.Add").Msg("error inserting account")
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return models.Account{}, fmt.Errorf("%w: %w", ErrEmailAlreadyExists, err)
		}
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return account, nil
}
