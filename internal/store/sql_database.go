// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-signup/internal/logger"
	"github.com/MKhiriev/go-signup/migrations"
)

// DB is the SQLite connection behind the local key-value store.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies pending schema migrations and logs the outcome.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB); err != nil {
		db.logger.Err(err).Str("func", "DB.Migrate").Msg("schema migration failed")
		return fmt.Errorf("migrate local store: %w", err)
	}

	db.logger.Debug().Str("func", "DB.Migrate").Msg("schema is up to date")
	return nil
}
