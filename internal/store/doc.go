// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence for accounts and logged server
// errors on top of database/sql.
//
// Two backends are supported and selected by the DSN scheme: PostgreSQL via
// the pgx stdlib driver and SQLite via go-sqlite3. Both share the same
// schema (see package migrations) and the same squirrel-built queries; only
// the placeholder format and the driver error classifier differ.
//
// Transient driver errors are retried with exponential backoff before they
// are surfaced to the caller.
package store
