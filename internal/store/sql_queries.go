// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	kvTable       = "kv_store"
	kvKeyColumn   = "storage_key"
	kvValueColumn = "storage_value"
	kvUpdatedAt   = "updated_at"

	upsertKVSuffix = "ON CONFLICT(" + kvKeyColumn + ") DO UPDATE SET " +
		kvValueColumn + " = excluded." + kvValueColumn + ", " +
		kvUpdatedAt + " = excluded." + kvUpdatedAt
)

// buildSetQuery builds the upsert of one key. SQLite uses "?" placeholders.
func buildSetQuery(key, value string, now time.Time) (string, []any, error) {
	query, args, err := sq.Insert(kvTable).
		Columns(kvKeyColumn, kvValueColumn, kvUpdatedAt).
		Values(key, value, now).
		Suffix(upsertKVSuffix).
		PlaceholderFormat(sq.Question).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildGetQuery builds the lookup of one key.
func buildGetQuery(key string) (string, []any, error) {
	query, args, err := sq.Select(kvValueColumn).
		From(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		PlaceholderFormat(sq.Question).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
