// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-account-gate/internal/logger"

// Storages groups the repositories built over one [DB].
type Storages struct {
	Accounts  AccountRepository
	ErrorLogs LogErrorRepository
}

// NewStorages builds every repository on top of db.
func NewStorages(db *DB, ids IDGenerator, log *logger.Logger) *Storages {
	return &Storages{
		Accounts:  NewAccountRepository(db, ids, log),
		ErrorLogs: NewLogErrorRepository(db, ids, log),
	}
}
