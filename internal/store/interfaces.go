// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the local key-value storage the registration
// form persists its payload to: a SQLite table, a JSON document on disk, or
// a process-local map.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStore is a local string key-value store. Writes to an existing key
// replace its value (last write wins).
type KeyValueStore interface {
	// Set stores value under key.
	Set(ctx context.Context, key, value string) error
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Close releases the underlying resources.
	Close() error
}
