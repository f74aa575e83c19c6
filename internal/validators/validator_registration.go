// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"time"

	"github.com/MKhiriev/go-signup/models"
)

// RegistrationValidator implements the Validator interface for registration
// payloads: models.FormPayload, *models.FormPayload and map[string]any.
//
// With no field names it validates the whole form the same way as
// [ValidateForm]. With field names it validates only those fields, using the
// json names of [models.Field] ("firstName", "email", ...).
type RegistrationValidator struct {
	now func() time.Time
}

// NewRegistrationValidator constructs a new RegistrationValidator
// and returns it as the Validator interface.
func NewRegistrationValidator() Validator {
	return NewRegistrationValidatorWithClock(time.Now)
}

// NewRegistrationValidatorWithClock is [NewRegistrationValidator] with the
// age rule evaluated against now. A nil now falls back to [time.Now].
func NewRegistrationValidatorWithClock(now func() time.Time) Validator {
	if now == nil {
		now = time.Now
	}
	return &RegistrationValidator{now: now}
}

// Validate returns nil when the payload is valid, a *ValidationError listing
// the collected codes when it is not, ErrUnsupportedType for unknown payload
// types and ErrUnknownField for unknown field names.
func (v *RegistrationValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	values, supported := extractFormValues(obj)
	if !supported {
		return ErrUnsupportedType
	}

	now := v.now()

	if len(fields) == 0 {
		result := ValidateFormAt(obj, now)
		if !result.Valid {
			return &ValidationError{Codes: result.Errors}
		}
		return nil
	}

	codes := make([]string, 0, len(fields))
	for _, name := range fields {
		field := models.Field(name)
		if !field.IsKnown() {
			return ErrUnknownField
		}

		if code := validateRaw(field, values.rawValue(field), now); code != models.CodeNone {
			codes = append(codes, aggregatedCode(field, code))
		}
	}

	if len(codes) > 0 {
		return &ValidationError{Codes: codes}
	}

	return nil
}
