// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientStorage contains the local store settings of the client.
type ClientStorage struct {
	// Driver is the store backend name.
	Driver string `validate:"oneof=sqlite file memory"`
	// DSN is the SQLite path or JSON file path of the store.
	DSN string `validate:"required_unless=Driver memory"`
}

// ClientForm contains the registration form settings of the client.
type ClientForm struct {
	// StorageKey is the key the submitted payload is written under.
	StorageKey string `validate:"required"`
	// ConfirmationDelay is the lifetime of the confirmation notice.
	ConfirmationDelay time.Duration `validate:"gt=0"`
}

// ClientLog contains the client logging settings.
type ClientLog struct {
	// FilePath is the log file path; empty means next to the executable.
	FilePath string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Storage contains local store settings.
	Storage ClientStorage
	// Form contains form behaviour settings.
	Form ClientForm
	// Log contains logging settings.
	Log ClientLog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration. args are the command-line arguments
// without the program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Storage: ClientStorage{
			Driver: cfg.Storage.Driver,
			DSN:    cfg.Storage.DB.DSN,
		},
		Form: ClientForm{
			StorageKey:        cfg.Form.StorageKey,
			ConfirmationDelay: cfg.Form.ConfirmationDelay,
		},
		Log: ClientLog{
			FilePath: cfg.Log.FilePath,
		},
	}
}
