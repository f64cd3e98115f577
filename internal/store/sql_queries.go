// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-account-gate/models"
)

const (
	accountsTable  = "accounts"
	errorLogsTable = "error_logs"
)

var accountColumns = []string{"id", "name", "email", "password_hash", "created_at"}

func buildLoadAccountByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	query, args, err := b.
		Select(accountColumns...).
		From(accountsTable).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildInsertAccountQuery(b sq.StatementBuilderType, account models.Account) (string, []any, error) {
	query, args, err := b.
		Insert(accountsTable).
		Columns(accountColumns...).
		Values(account.ID, account.Name, account.Email, account.PasswordHash, account.CreatedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildInsertErrorLogQuery(b sq.StatementBuilderType, id, stack string, createdAt time.Time) (string, []any, error) {
	query, args, err := b.
		Insert(errorLogsTable).
		Columns("id", "stack", "created_at").
		Values(id, stack, createdAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
