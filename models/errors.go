// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorCode is a stable, machine-readable token identifying why a field
// failed validation. The empty code means the field is valid.
type ErrorCode string

// Error codes produced by the registration validators.
const (
	CodeNone              ErrorCode = ""
	CodeInvalidType       ErrorCode = "INVALID_TYPE"
	CodeXSSDetected       ErrorCode = "XSS_DETECTED"
	CodeInvalidIdentity   ErrorCode = "INVALID_IDENTITY"
	CodeIdentityTooShort  ErrorCode = "IDENTITY_TOO_SHORT"
	CodeInvalidEmail      ErrorCode = "INVALID_EMAIL"
	CodeInvalidBirthDate  ErrorCode = "INVALID_BIRTHDATE"
	CodeAgeUnder18        ErrorCode = "AGE_UNDER_18"
	CodeInvalidPostalCode ErrorCode = "INVALID_POSTAL_CODE"
	CodeInvalidPayload    ErrorCode = "INVALID_PAYLOAD"
	CodeUnknownField      ErrorCode = "UNKNOWN_FIELD"
)

func (c ErrorCode) String() string {
	return string(c)
}

// FieldErrors holds the current error code of every form field.
// A field with CodeNone is valid.
type FieldErrors struct {
	FirstName  ErrorCode `json:"firstName,omitempty"`
	LastName   ErrorCode `json:"lastName,omitempty"`
	Email      ErrorCode `json:"email,omitempty"`
	BirthDate  ErrorCode `json:"birthDate,omitempty"`
	PostalCode ErrorCode `json:"postalCode,omitempty"`
	City       ErrorCode `json:"city,omitempty"`
}

// Get returns the error code stored for field f.
func (e FieldErrors) Get(f Field) ErrorCode {
	switch f {
	case FieldFirstName:
		return e.FirstName
	case FieldLastName:
		return e.LastName
	case FieldEmail:
		return e.Email
	case FieldBirthDate:
		return e.BirthDate
	case FieldPostalCode:
		return e.PostalCode
	case FieldCity:
		return e.City
	default:
		return CodeNone
	}
}

// Set overwrites the error code of field f.
func (e *FieldErrors) Set(f Field, code ErrorCode) {
	switch f {
	case FieldFirstName:
		e.FirstName = code
	case FieldLastName:
		e.LastName = code
	case FieldEmail:
		e.Email = code
	case FieldBirthDate:
		e.BirthDate = code
	case FieldPostalCode:
		e.PostalCode = code
	case FieldCity:
		e.City = code
	}
}

// HasErrors reports whether at least one field carries a non-empty code.
func (e FieldErrors) HasErrors() bool {
	for _, f := range Fields {
		if e.Get(f) != CodeNone {
			return true
		}
	}
	return false
}

// Clear resets every field to CodeNone.
func (e *FieldErrors) Clear() {
	*e = FieldErrors{}
}
