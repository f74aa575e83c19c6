// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid local store settings
	// (for example, an unknown driver or an empty DSN for a persistent driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidFormConfigs indicates invalid form settings
	// (for example, an empty storage key or a non-positive confirmation delay).
	ErrInvalidFormConfigs = errors.New("invalid form configuration")
)
