// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses the client command-line flags from args.
//
// Flags:
//
//	-driver store driver: sqlite, file or memory
//	-d store DSN (SQLite path or JSON file path)
//	-storage-key key the submitted payload is stored under
//	-confirmation-delay confirmation notice lifetime (e.g. "3s")
//	-log-file client log file path
//	-c/-config config file path (JSON, or YAML for .yaml/.yml)
func parseFlags(args []string) (*StructuredConfig, error) {
	var driver string
	var databaseDSN string
	var storageKey string
	var confirmationDelay time.Duration
	var logFile string
	var jsonConfigPath string

	fs := flag.NewFlagSet("signup", flag.ContinueOnError)
	fs.StringVar(&driver, "driver", "", "Store driver: sqlite, file or memory")
	fs.StringVar(&databaseDSN, "d", "", "Store DSN")
	fs.StringVar(&storageKey, "storage-key", "", "Key the submitted form is stored under")
	fs.DurationVar(&confirmationDelay, "confirmation-delay", 0, "Confirmation notice lifetime (e.g., 3s)")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "config file path (JSON or YAML)")
	fs.StringVar(&jsonConfigPath, "config", "", "config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Storage: Storage{
			Driver: driver,
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Form: Form{
			StorageKey:        storageKey,
			ConfirmationDelay: confirmationDelay,
		},
		Log: Log{
			FilePath: logFile,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
