// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by store methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by Get when nothing is stored under the key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrUnsupportedDriver is returned when the configured store driver is
	// not one of sqlite, file or memory.
	ErrUnsupportedDriver = errors.New("unsupported storage driver")

	// ErrEmptyKey is returned when a read or write targets the empty key.
	ErrEmptyKey = errors.New("storage key is empty")
)

// Low-level database operation errors. These are wrapped by the SQLite store
// when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
