// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DotEnvFile is the optional file of KEY=VALUE pairs read from the working
// directory before the environment is parsed.
const DotEnvFile = ".env"

// parseEnv populates cfg from environment variables (STORAGE_DRIVER,
// STORAGE_DB_DSN, FORM_STORAGE_KEY, FORM_CONFIRMATION_DELAY, LOG_FILE_PATH,
// CONFIG) using the caarlos0/env library. Variables missing from the process
// environment are looked up in [DotEnvFile]. Unset variables leave the zero
// value so that lower-priority sources survive the merge.
func parseEnv(cfg *StructuredConfig) error {
	environ, err := environment(DotEnvFile)
	if err != nil {
		return err
	}

	if err = env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// environment returns the process environment completed with the pairs of
// the dotenv file at path. The process environment wins. A missing file is
// not an error.
func environment(path string) (map[string]string, error) {
	vars := env.ToMap(os.Environ())

	fileVars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return vars, nil
		}
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	for k, v := range fileVars {
		if _, set := vars[k]; !set {
			vars[k] = v
		}
	}

	return vars, nil
}
