// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Every field has a default, so the structured view has nothing to reject;
// the client view carries the real rules.
func (cfg *StructuredConfig) validate() error {
	return nil
}

// validate applies the `validate` tags of the client view and reports the
// first failing group as ErrInvalidStorageConfigs or ErrInvalidFormConfigs.
func (cfg *ClientConfig) validate() error {
	err := structValidator.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	switch {
	case strings.Contains(fe.StructNamespace(), ".Storage."):
		return fmt.Errorf("%w: %s", ErrInvalidStorageConfigs, fe.Error())
	case strings.Contains(fe.StructNamespace(), ".Form."):
		return fmt.Errorf("%w: %s", ErrInvalidFormConfigs, fe.Error())
	default:
		return err
	}
}
