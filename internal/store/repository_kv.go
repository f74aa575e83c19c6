// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-signup/internal/logger"
)

// sqliteKeyValueStore is the SQLite-backed implementation of
// [KeyValueStore]. Values live in the "kv_store" table, one row per key.
type sqliteKeyValueStore struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLiteKeyValueStore constructs a [KeyValueStore] on top of an open and
// migrated database connection.
func NewSQLiteKeyValueStore(db *DB, logger *logger.Logger) KeyValueStore {
	return &sqliteKeyValueStore{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

// Set upserts value under key.
func (s *sqliteKeyValueStore) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	query, args, err := buildSetQuery(key, value, s.now().UTC())
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKeyValueStore.Set").
			Str("key", key).
			Msg("failed to create query")
		return err
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKeyValueStore.Set").
			Str("key", key).
			Msg("failed to store value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	s.logger.Debug().
		Str("func", "sqliteKeyValueStore.Set").
		Str("key", key).
		Int("bytes", len(value)).
		Msg("value stored")

	return nil
}

// Get returns the value stored under key.
func (s *sqliteKeyValueStore) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	query, args, err := buildGetQuery(key)
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKeyValueStore.Get").
			Str("key", key).
			Msg("failed to create query")
		return "", err
	}

	var value string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKeyValueStore.Get").
			Str("key", key).
			Msg("failed to read value")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

// Close closes the database connection.
func (s *sqliteKeyValueStore) Close() error {
	return s.DB.Close()
}
