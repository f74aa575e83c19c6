// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"time"

	"github.com/MKhiriev/go-signup/models"
)

// Prefixes applied to identity codes in aggregated results so that the
// checks of different identity fields stay distinguishable.
const (
	PrefixFirstName = "FIRSTNAME_"
	PrefixLastName  = "LASTNAME_"
	PrefixCity      = "CITY_"
)

// FormResult is the outcome of a whole-form check. Errors is never nil.
type FormResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// formValues are the raw, not yet type-checked, values of a payload.
type formValues struct {
	birth      any
	postalCode any
	firstName  any
	lastName   any
	email      any
	city       any
}

// ValidateForm runs every field validator over payload and collects the
// error codes. See [ValidateFormAt].
func ValidateForm(payload any) FormResult {
	return ValidateFormAt(payload, time.Now())
}

// IsFormValid reports whether ValidateForm(payload) succeeds.
func IsFormValid(payload any) bool {
	return ValidateForm(payload).Valid
}

// ValidateFormAt is [ValidateForm] with an explicit current time.
//
// payload must be a models.FormPayload, a non-nil *models.FormPayload or a
// map[string]any keyed by field name; anything else yields exactly
// ["INVALID_PAYLOAD"]. Maps read the birth date from "birthDate", falling
// back to "birth".
//
// Codes are collected in a fixed order: birth date, postal code, first name,
// last name, email and city. City is optional and only checked when present
// and non-empty.
func ValidateFormAt(payload any, now time.Time) FormResult {
	values, supported := extractFormValues(payload)
	if !supported {
		return FormResult{Valid: false, Errors: []string{string(models.CodeInvalidPayload)}}
	}

	errs := make([]string, 0, 6)

	if r := ValidateAgeAt(values.birth, now); !r.Valid {
		errs = append(errs, string(r.ErrorCode))
	}
	if r := ValidatePostalCode(values.postalCode); !r.Valid {
		errs = append(errs, string(r.ErrorCode))
	}
	if r := ValidateIdentity(values.firstName); !r.Valid {
		errs = append(errs, PrefixFirstName+string(r.ErrorCode))
	}
	if r := ValidateIdentity(values.lastName); !r.Valid {
		errs = append(errs, PrefixLastName+string(r.ErrorCode))
	}
	if r := ValidateEmail(values.email); !r.Valid {
		errs = append(errs, string(r.ErrorCode))
	}
	if values.city != nil && values.city != "" {
		if r := ValidateIdentity(values.city); !r.Valid {
			errs = append(errs, PrefixCity+string(r.ErrorCode))
		}
	}

	return FormResult{Valid: len(errs) == 0, Errors: errs}
}

// ValidateField checks one form field value and returns its error code,
// [models.CodeNone] when the value is valid.
func ValidateField(field models.Field, value string) models.ErrorCode {
	return ValidateFieldAt(field, value, time.Now())
}

// ValidateFieldAt is [ValidateField] with an explicit current time.
func ValidateFieldAt(field models.Field, value string, now time.Time) models.ErrorCode {
	return validateRaw(field, value, now)
}

func validateRaw(field models.Field, raw any, now time.Time) models.ErrorCode {
	var r Result

	switch field {
	case models.FieldFirstName, models.FieldLastName, models.FieldCity:
		r = ValidateIdentity(raw)
	case models.FieldEmail:
		r = ValidateEmail(raw)
	case models.FieldBirthDate:
		r = ValidateAgeAt(raw, now)
	case models.FieldPostalCode:
		r = ValidatePostalCode(raw)
	default:
		return models.CodeUnknownField
	}

	return r.ErrorCode
}

// aggregatedCode returns code as it appears in a [FormResult] for field.
func aggregatedCode(field models.Field, code models.ErrorCode) string {
	switch field {
	case models.FieldFirstName:
		return PrefixFirstName + string(code)
	case models.FieldLastName:
		return PrefixLastName + string(code)
	case models.FieldCity:
		return PrefixCity + string(code)
	default:
		return string(code)
	}
}

func extractFormValues(payload any) (formValues, bool) {
	switch p := payload.(type) {
	case models.FormPayload:
		return valuesFromPayload(p), true
	case *models.FormPayload:
		if p == nil {
			return formValues{}, false
		}
		return valuesFromPayload(*p), true
	case map[string]any:
		if p == nil {
			return formValues{}, false
		}
		birth, found := p[string(models.FieldBirthDate)]
		if !found {
			birth = p["birth"]
		}
		return formValues{
			birth:      birth,
			postalCode: p[string(models.FieldPostalCode)],
			firstName:  p[string(models.FieldFirstName)],
			lastName:   p[string(models.FieldLastName)],
			email:      p[string(models.FieldEmail)],
			city:       p[string(models.FieldCity)],
		}, true
	default:
		return formValues{}, false
	}
}

func valuesFromPayload(p models.FormPayload) formValues {
	return formValues{
		birth:      p.BirthDate,
		postalCode: p.PostalCode,
		firstName:  p.FirstName,
		lastName:   p.LastName,
		email:      p.Email,
		city:       p.City,
	}
}

// rawValue returns the raw value of field from a supported payload.
func (v formValues) rawValue(field models.Field) any {
	switch field {
	case models.FieldFirstName:
		return v.firstName
	case models.FieldLastName:
		return v.lastName
	case models.FieldEmail:
		return v.email
	case models.FieldBirthDate:
		return v.birth
	case models.FieldPostalCode:
		return v.postalCode
	case models.FieldCity:
		return v.city
	default:
		return nil
	}
}
