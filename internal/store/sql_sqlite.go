// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-account-gate/internal/logger"
)

func openSQLite(ctx context.Context, dsn string, log *logger.Logger) (*sql.DB, error) {
	conn, err := sql.Open(string(DialectSQLite), dsn)
	if err != nil {
		log.Err(err).Str("func", "openSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// a single writer avoids SQLITE_BUSY between pooled connections
	conn.SetMaxOpenConns(1)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "openSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", "openSQLite").Msg("connected to database successfully")

	return conn, nil
}
