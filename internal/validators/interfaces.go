// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators implements the registration form rules.
//
// Core concepts:
//   - Field validators: pure functions (ValidateIdentity, ValidateEmail,
//     ValidateAge, ValidatePostalCode) mapping one raw value to a [Result]
//     carrying a stable error code.
//   - Form aggregator: ValidateForm runs every field validator over a whole
//     payload and collects the codes.
//   - Validator: generic interface used by callers that prefer an error
//     return, with optional field-level scoping.
//
// Validators never panic on user input. The only programmer-facing failure
// path is [CalculateAge], which returns sentinel errors on contract
// violations.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
