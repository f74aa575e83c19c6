// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType  = errors.New("unsupported type for validation")
	ErrUnknownField     = errors.New("unknown field for validation")
	ErrValidationFailed = errors.New("validation failed")

	ErrMissingParam     = errors.New("missing param p")
	ErrNotRecord        = errors.New("param p is not a record")
	ErrInvalidBirthDate = errors.New("invalid birth date")
)

// ValidationError carries the error codes collected by a failed validation.
// It matches [ErrValidationFailed] with errors.Is.
type ValidationError struct {
	Codes []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Codes, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}
