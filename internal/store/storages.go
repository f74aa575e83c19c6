// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-signup/internal/config"
	"github.com/MKhiriev/go-signup/internal/logger"
)

// NewKeyValueStore initialises the local store selected by cfg.Driver:
//   - "sqlite": opens the database at cfg.DSN, creating the file if it does
//     not yet exist, and runs pending schema migrations;
//   - "file": loads (or later creates) the JSON document at cfg.DSN;
//   - "memory": keeps everything in the process.
//
// Returns ErrUnsupportedDriver for any other driver.
func NewKeyValueStore(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (KeyValueStore, error) {
	log.Info().Str("driver", cfg.Driver).Msg("creating local storage...")

	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DSN, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}

		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		return NewSQLiteKeyValueStore(db, log), nil
	case config.DriverFile:
		s, err := NewFileKeyValueStore(cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("file storage error: %w", err)
		}
		return s, nil
	case config.DriverMemory:
		return NewMemoryKeyValueStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}
