// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-account-gate/internal/config"
	"github.com/MKhiriev/go-account-gate/internal/logger"
)

func TestDialectFromDSN(t *testing.T) {
	tests := []struct {
		dsn         string
		wantDialect Dialect
		wantDSN     string
		wantErr     bool
	}{
		{dsn: "postgres://u:p@localhost:5432/db", wantDialect: DialectPostgres, wantDSN: "postgres://u:p@localhost:5432/db"},
		{dsn: "postgresql://localhost/db", wantDialect: DialectPostgres, wantDSN: "postgresql://localhost/db"},
		{dsn: "sqlite://accounts.db", wantDialect: DialectSQLite, wantDSN: "accounts.db"},
		{dsn: "file:accounts.db?cache=shared", wantDialect: DialectSQLite, wantDSN: "file:accounts.db?cache=shared"},
		{dsn: "mysql://localhost/db", wantErr: true},
		{dsn: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			dialect, dsn, err := dialectFromDSN(tt.dsn)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedDSN)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDialect, dialect)
			assert.Equal(t, tt.wantDSN, dsn)
		})
	}
}

func TestNewDB_UnsupportedDSN(t *testing.T) {
	db, err := NewDB(context.Background(), config.DB{DSN: "redis://localhost"}, logger.Nop())
	assert.Nil(t, db)
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}

func TestNewDB_SQLiteInMemory(t *testing.T) {
	db, err := NewDB(context.Background(), config.DB{DSN: "file::memory:?cache=shared"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	assert.Equal(t, DialectSQLite, db.Dialect())
	assert.IsType(t, &SQLiteErrorClassifier{}, db.errorClassificator)
}

func TestWithRetry(t *testing.T) {
	transient := pgError(pgerrcode.DeadlockDetected)
	permanent := pgError(pgerrcode.UniqueViolation)

	tests := []struct {
		name       string
		maxRetries uint64
		errs       []error
		wantCalls  int
		wantErr    error
	}{
		{name: "success first try", maxRetries: 3, errs: []error{nil}, wantCalls: 1},
		{name: "permanent error not retried", maxRetries: 3, errs: []error{permanent}, wantCalls: 1, wantErr: permanent},
		{name: "transient then success", maxRetries: 3, errs: []error{transient, transient, nil}, wantCalls: 3},
		{name: "transient exhausts retries", maxRetries: 2, errs: []error{transient, transient, transient}, wantCalls: 3, wantErr: transient},
		{name: "zero retries", maxRetries: 0, errs: []error{transient}, wantCalls: 1, wantErr: transient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sqlDB, _ := newTestDB(t)
			db := newDBFromSQL(sqlDB, DialectPostgres, tt.maxRetries)

			calls := 0
			err := db.withRetry(testContext(), func(ctx context.Context) error {
				err := tt.errs[calls]
				calls++
				return err
			})

			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestWithRetry_StopsOnCancelledContext(t *testing.T) {
	sqlDB, _ := newTestDB(t)
	db := newDBFromSQL(sqlDB, DialectPostgres, 5)

	ctx, cancel := context.WithCancel(testContext())
	calls := 0
	err := db.withRetry(ctx, func(ctx context.Context) error {
		calls++
		cancel()
		return pgError(pgerrcode.ConnectionFailure)
	})

	require.Error(t, err)
	assert.Less(t, calls, 6)
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.SerializationFailure)))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.CannotConnectNow)))
	assert.Equal(t, NonRetryable, c.Classify(pgError(pgerrcode.UniqueViolation)))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
	assert.Equal(t, NonRetryable, c.Classify(nil))

	assert.True(t, c.IsUniqueViolation(pgError(pgerrcode.UniqueViolation)))
	assert.False(t, c.IsUniqueViolation(pgError(pgerrcode.NotNullViolation)))
	assert.False(t, c.IsUniqueViolation(errors.New("plain")))
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrLocked}))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))

	assert.True(t, c.IsUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}))
	assert.True(t, c.IsUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}))
	assert.False(t, c.IsUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}))
}
