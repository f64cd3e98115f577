// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-account-gate/internal/logger"
)

func openPostgres(ctx context.Context, dsn string, log *logger.Logger) (*sql.DB, error) {
	// establish connection
	conn, err := sql.Open(string(DialectPostgres), dsn)
	if err != nil {
		log.Err(err).Str("func", "openPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "openPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", "openPostgres").Msg("connected to database successfully")

	return conn, nil
}
