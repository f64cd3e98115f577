// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-account-gate/internal/logger"
	"github.com/MKhiriev/go-account-gate/models"
)

const (
	selectAccountPostgresSQL = `SELECT id, name, email, password_hash, created_at FROM accounts WHERE email = $1 LIMIT 1`
	selectAccountSQLiteSQL   = `SELECT id, name, email, password_hash, created_at FROM accounts WHERE email = ? LIMIT 1`
	insertAccountPostgresSQL = `INSERT INTO accounts (id,name,email,password_hash,created_at) VALUES ($1,$2,$3,$4,$5)`
	insertAccountSQLiteSQL   = `INSERT INTO accounts (id,name,email,password_hash,created_at) VALUES (?,?,?,?,?)`
)

var accountRowColumns = []string{"id", "name", "email", "password_hash", "created_at"}

// ── helpers ───────────────────────────────────────────────────────────────────

type fixedIDs struct{ id string }

func (g fixedIDs) Generate() string { return g.id }

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newDBFromSQL(db *sql.DB, dialect Dialect, maxRetries uint64) *DB {
	storeDB := newDB(db, dialect, maxRetries, logger.Nop())
	storeDB.retryBase = time.Millisecond
	return storeDB
}

func newTestAccountRepo(t *testing.T, dialect Dialect, maxRetries uint64) (*accountRepository, sqlmock.Sqlmock, time.Time) {
	t.Helper()
	db, mock := newTestDB(t)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	repo := &accountRepository{
		db:  newDBFromSQL(db, dialect, maxRetries),
		ids: fixedIDs{id: "acc-1"},
		now: func() time.Time { return now },
	}
	return repo, mock, now
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

// ── LoadByEmail ───────────────────────────────────────────────────────────────

func TestLoadByEmail(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		dialect Dialect
		setup   func(mock sqlmock.Sqlmock)
		want    *models.Account
		wantErr error
	}{
		{
			name:    "found (postgres)",
			dialect: DialectPostgres,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(selectAccountPostgresSQL)).
					WithArgs("a@b.c").
					WillReturnRows(sqlmock.NewRows(accountRowColumns).
						AddRow("id-1", "Ann", "a@b.c", "hash", created))
			},
			want: &models.Account{ID: "id-1", Name: "Ann", Email: "a@b.c", PasswordHash: "hash", CreatedAt: created},
		},
		{
			name:    "found (sqlite)",
			dialect: DialectSQLite,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(selectAccountSQLiteSQL)).
					WithArgs("a@b.c").
					WillReturnRows(sqlmock.NewRows(accountRowColumns).
						AddRow("id-1", "Ann", "a@b.c", "hash", created))
			},
			want: &models.Account{ID: "id-1", Name: "Ann", Email: "a@b.c", PasswordHash: "hash", CreatedAt: created},
		},
		{
			name:    "absent yields nil without error",
			dialect: DialectPostgres,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(selectAccountPostgresSQL)).
					WithArgs("a@b.c").
					WillReturnRows(sqlmock.NewRows(accountRowColumns))
			},
			want: nil,
		},
		{
			name:    "driver error is wrapped",
			dialect: DialectPostgres,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(selectAccountPostgresSQL)).
					WithArgs("a@b.c").
					WillReturnError(errors.New("network down"))
			},
			wantErr: ErrExecutingQuery,
		},
		{
			name:    "transient error is retried",
			dialect: DialectPostgres,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(selectAccountPostgresSQL)).
					WithArgs("a@b.c").
					WillReturnError(pgError(pgerrcode.SerializationFailure))
				mock.ExpectQuery(regexp.QuoteMeta(selectAccountPostgresSQL)).
					WithArgs("a@b.c").
					WillReturnRows(sqlmock.NewRows(accountRowColumns).
						AddRow("id-1", "Ann", "a@b.c", "hash", created))
			},
			want: &models.Account{ID: "id-1", Name: "Ann", Email: "a@b.c", PasswordHash: "hash", CreatedAt: created},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, _ := newTestAccountRepo(t, tt.dialect, 2)
			tt.setup(mock)

			got, err := repo.LoadByEmail(testContext(), "a@b.c")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// ── Add ───────────────────────────────────────────────────────────────────────

func TestAdd(t *testing.T) {
	newAccount := models.NewAccount{Name: "Ann", Email: "a@b.c", PasswordHash: "hash"}

	tests := []struct {
		name       string
		dialect    Dialect
		maxRetries uint64
		setup      func(mock sqlmock.Sqlmock, args []driver.Value)
		wantErr    error
	}{
		{
			name:    "success (postgres)",
			dialect: DialectPostgres,
			setup: func(mock sqlmock.Sqlmock, args []driver.Value) {
				mock.ExpectExec(regexp.QuoteMeta(insertAccountPostgresSQL)).
					WithArgs(args...).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:    "success (sqlite)",
			dialect: DialectSQLite,
			setup: func(mock sqlmock.Sqlmock, args []driver.Value) {
				mock.ExpectExec(regexp.QuoteMeta(insertAccountSQLiteSQL)).
					WithArgs(args...).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name:    "postgres unique violation",
			dialect: DialectPostgres,
			setup: func(mock sqlmock.Sqlmock, args []driver.Value) {
				mock.ExpectExec(regexp.QuoteMeta(insertAccountPostgresSQL)).
					WithArgs(args...).
					WillReturnError(pgError(pgerrcode.UniqueViolation))
			},
			wantErr: ErrEmailAlreadyExists,
		},
		{
			name:    "sqlite unique violation",
			dialect: DialectSQLite,
			setup: func(mock sqlmock.Sqlmock, args []driver.Value) {
				mock.ExpectExec(regexp.QuoteMeta(insertAccountSQLiteSQL)).
					WithArgs(args...).
					WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique})
			},
			wantErr: ErrEmailAlreadyExists,
		},
		{
			name:    "unexpected driver error",
			dialect: DialectPostgres,
			setup: func(mock sqlmock.Sqlmock, args []driver.Value) {
				mock.ExpectExec(regexp.QuoteMeta(insertAccountPostgresSQL)).
					WithArgs(args...).
					WillReturnError(errors.New("disk full"))
			},
			wantErr: ErrExecutingStatement,
		},
		{
			name:       "retries exhausted on busy sqlite",
			dialect:    DialectSQLite,
			maxRetries: 1,
			setup: func(mock sqlmock.Sqlmock, args []driver.Value) {
				busy := sqlite3.Error{Code: sqlite3.ErrBusy}
				mock.ExpectExec(regexp.QuoteMeta(insertAccountSQLiteSQL)).WithArgs(args...).WillReturnError(busy)
				mock.ExpectExec(regexp.QuoteMeta(insertAccountSQLiteSQL)).WithArgs(args...).WillReturnError(busy)
			},
			wantErr: ErrExecutingStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, now := newTestAccountRepo(t, tt.dialect, tt.maxRetries)
			tt.setup(mock, []driver.Value{"acc-1", "Ann", "a@b.c", "hash", now})

			got, err := repo.Add(testContext(), newAccount)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, models.Account{}, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, models.Account{
					ID: "acc-1", Name: "Ann", Email: "a@b.c", PasswordHash: "hash", CreatedAt: now,
				}, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestNewAccountRepository(t *testing.T) {
	db, _ := newTestDB(t)
	repo := NewAccountRepository(newDBFromSQL(db, DialectPostgres, 0), fixedIDs{id: "x"}, logger.Nop())
	require.NotNil(t, repo)
}
