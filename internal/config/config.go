// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Default values applied before any other configuration source.
const (
	DefaultStorageDriver     = DriverSQLite
	DefaultStorageDSN        = "signup.db"
	DefaultStorageKey        = "inscription"
	DefaultConfirmationDelay = 3 * time.Second
)

// Storage drivers understood by the local store.
const (
	DriverSQLite = "sqlite"
	DriverFile   = "file"
	DriverMemory = "memory"
)

// StructuredConfig is the top-level configuration container for the signup
// client. It is populated by merging defaults, environment variables,
// command-line flags and an optional JSON or YAML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage holds the settings of the local key-value store the form
	// payload is persisted to.
	Storage Storage `envPrefix:"STORAGE_"`

	// Form holds the registration form behaviour settings.
	Form Form `envPrefix:"FORM_"`

	// Log holds logging output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the local store settings.
type Storage struct {
	// Driver selects the store backend: "sqlite", "file" or "memory".
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// DB holds the database (or file) location.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local store.
type DB struct {
	// DSN is the SQLite database path, or the JSON file path for the
	// "file" driver (e.g. "signup.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Form holds the registration form settings.
type Form struct {
	// StorageKey is the well-known key the submitted payload is stored under.
	// Env: FORM_STORAGE_KEY
	StorageKey string `env:"STORAGE_KEY"`

	// ConfirmationDelay is how long the confirmation notice stays visible
	// after a successful submit (e.g. "3s").
	// Env: FORM_CONFIRMATION_DELAY
	ConfirmationDelay time.Duration `env:"CONFIRMATION_DELAY"`
}

// Log holds logging settings.
type Log struct {
	// FilePath is the client log file. Empty means a "logs" file next to the
	// executable.
	// Env: LOG_FILE_PATH
	FilePath string `env:"FILE_PATH"`
}

// defaultConfig returns the lowest-priority configuration source.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			Driver: DefaultStorageDriver,
			DB:     DB{DSN: DefaultStorageDSN},
		},
		Form: Form{
			StorageKey:        DefaultStorageKey,
			ConfirmationDelay: DefaultConfirmationDelay,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Defaults
//  2. Environment variables, completed from a .env file
//  3. Command-line flags
//  4. config file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withConfigFile().
		build()
}
