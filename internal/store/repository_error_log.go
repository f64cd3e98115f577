// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-account-gate/internal/logger"
)

type errorLogRepository struct {
	db  *DB
	ids IDGenerator
	now func() time.Time
}

// NewLogErrorRepository constructs a [LogErrorRepository] that appends to
// the "error_logs" table.
func NewLogErrorRepository(db *DB, ids IDGenerator, log *logger.Logger) LogErrorRepository {
	log.Debug().Msg("creating error log repository")
	return &errorLogRepository{
		db:  db,
		ids: ids,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// LogError stores detail together with the current time.
func (r *errorLogRepository) LogError(ctx context.Context, detail string) error {
	query, args, err := buildInsertErrorLogQuery(r.db.builder, r.ids.Generate(), detail, r.now())
	if err != nil {
		return err
	}

	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*errorLogRepository.LogError").Msg("error saving error log")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
