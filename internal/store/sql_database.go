// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-account-gate/internal/config"
	"github.com/MKhiriev/go-account-gate/internal/logger"
	"github.com/MKhiriev/go-account-gate/migrations"
)

// Dialect names both the database/sql driver and the goose dialect of a
// backend.
type Dialect string

const (
	DialectPostgres Dialect = "pgx"
	DialectSQLite   Dialect = "sqlite3"
)

const defaultRetryBase = 50 * time.Millisecond

// DB wraps *sql.DB with the dialect-specific query builder and the error
// classifier used to decide on retries.
type DB struct {
	*sql.DB
	dialect            Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	maxRetries         uint64
	retryBase          time.Duration
	logger             *logger.Logger
}

// NewDB opens and pings the database selected by cfg.DSN:
//   - postgres:// and postgresql:// use PostgreSQL;
//   - file: and sqlite:// use SQLite.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect, dsn, err := dialectFromDSN(cfg.DSN)
	if err != nil {
		return nil, err
	}

	var conn *sql.DB
	switch dialect {
	case DialectPostgres:
		conn, err = openPostgres(ctx, dsn, log)
	case DialectSQLite:
		conn, err = openSQLite(ctx, dsn, log)
	}
	if err != nil {
		return nil, err
	}

	return newDB(conn, dialect, cfg.MaxRetries, log), nil
}

func newDB(conn *sql.DB, dialect Dialect, maxRetries uint64, log *logger.Logger) *DB {
	db := &DB{
		DB:         conn,
		dialect:    dialect,
		maxRetries: maxRetries,
		retryBase:  defaultRetryBase,
		logger:     log,
	}

	switch dialect {
	case DialectSQLite:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	}

	return db
}

func dialectFromDSN(dsn string) (Dialect, string, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DialectPostgres, dsn, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		return DialectSQLite, strings.TrimPrefix(dsn, "sqlite://"), nil
	case strings.HasPrefix(dsn, "file:"):
		return DialectSQLite, dsn, nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
	}
}

// Dialect reports the backend the connection was opened for.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// withRetry runs op and repeats it with exponential backoff while it fails
// with an error classified as [Retryable], at most maxRetries extra times.
func (db *DB) withRetry(ctx context.Context, op func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(db.maxRetries, retry.NewExponential(db.retryBase))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := op(ctx)
		if err == nil {
			return nil
		}

		if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).Str("func", "*DB.withRetry").Msg("transient database error, retrying")
			return retry.RetryableError(err)
		}

		return err
	})
}
