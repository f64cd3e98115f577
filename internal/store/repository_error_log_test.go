// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const insertErrorLogSQL = `INSERT INTO error_logs (id,stack,created_at) VALUES ($1,$2,$3)`

func newTestErrorLogRepo(t *testing.T) (*errorLogRepository, sqlmock.Sqlmock, time.Time) {
	t.Helper()
	db, mock := newTestDB(t)
	now := time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)
	return &errorLogRepository{
		db:  newDBFromSQL(db, DialectPostgres, 0),
		ids: fixedIDs{id: "log-1"},
		now: func() time.Time { return now },
	}, mock, now
}

func TestLogError_Success(t *testing.T) {
	repo, mock, now := newTestErrorLogRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(insertErrorLogSQL)).
		WithArgs("log-1", "boom\n\tat somewhere", now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.LogError(testContext(), "boom\n\tat somewhere")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogError_Failure(t *testing.T) {
	repo, mock, _ := newTestErrorLogRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(insertErrorLogSQL)).
		WillReturnError(errors.New("read-only database"))

	err := repo.LogError(testContext(), "boom")

	require.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}
