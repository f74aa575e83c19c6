// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-signup/models"
)

// MinIdentityLength is the minimal number of characters of an identity value.
const MinIdentityLength = 2

// AdultAge is the minimal accepted age, in calendar years.
const AdultAge = 18

var (
	htmlTagPattern    = regexp.MustCompile(`<[^>]*>`)
	identityPattern   = regexp.MustCompile(`^[A-Za-zÀ-ÖØ-öø-ÿ\s-]+$`)
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	postalCodePattern = regexp.MustCompile(`^[0-9]{5}$`)
)

// birthDateLayouts are tried in order when a birth date is given as a string.
var birthDateLayouts = []string{time.DateOnly, time.RFC3339}

// Result is the outcome of a single-field check.
type Result struct {
	Valid     bool             `json:"valid"`
	ErrorCode models.ErrorCode `json:"errorCode,omitempty"`
}

func pass() Result {
	return Result{Valid: true}
}

func fail(code models.ErrorCode) Result {
	return Result{Valid: false, ErrorCode: code}
}

// ValidateIdentity checks a first name, last name or city.
//
// Check order: INVALID_TYPE (not a string), XSS_DETECTED (contains an
// HTML-tag-like substring), INVALID_IDENTITY (anything but letters, accented
// Latin letters, whitespace and hyphens), IDENTITY_TOO_SHORT (fewer than
// [MinIdentityLength] characters).
func ValidateIdentity(v any) Result {
	s, isString := v.(string)
	if !isString {
		return fail(models.CodeInvalidType)
	}

	if htmlTagPattern.MatchString(s) {
		return fail(models.CodeXSSDetected)
	}

	if !identityPattern.MatchString(s) {
		return fail(models.CodeInvalidIdentity)
	}

	if utf8.RuneCountInString(s) < MinIdentityLength {
		return fail(models.CodeIdentityTooShort)
	}

	return pass()
}

// ValidateEmail checks the local@domain.tld shape of an email address.
func ValidateEmail(v any) Result {
	s, isString := v.(string)
	if !isString {
		return fail(models.CodeInvalidType)
	}

	if !emailPattern.MatchString(s) {
		return fail(models.CodeInvalidEmail)
	}

	return pass()
}

// ValidatePostalCode checks a french postal code: exactly five digits.
func ValidatePostalCode(v any) Result {
	s, isString := v.(string)
	if !isString {
		return fail(models.CodeInvalidType)
	}

	if !postalCodePattern.MatchString(s) {
		return fail(models.CodeInvalidPostalCode)
	}

	return pass()
}

// ValidateAge rejects birth dates that are not valid calendar dates and
// people under [AdultAge], relative to the current time.
func ValidateAge(v any) Result {
	return ValidateAgeAt(v, time.Now())
}

// ValidateBirthDate is an alias of [ValidateAge] named after the form field.
func ValidateBirthDate(v any) Result {
	return ValidateAge(v)
}

// ValidateAgeAt is [ValidateAge] with an explicit current time.
//
// v may be a time.Time, a *time.Time or a string in YYYY-MM-DD or RFC 3339
// form. The age is computed with [CalculateAgeAt].
func ValidateAgeAt(v any, now time.Time) Result {
	birth, parsed := parseBirth(v)
	if !parsed {
		return fail(models.CodeInvalidBirthDate)
	}

	age, err := CalculateAgeAt(models.Person{Birth: birth}, now)
	if err != nil {
		return fail(models.CodeInvalidBirthDate)
	}

	if age < AdultAge {
		return fail(models.CodeAgeUnder18)
	}

	return pass()
}

// CalculateAge returns the age of the person described by p, in calendar
// years, relative to the current time. See [CalculateAgeAt].
func CalculateAge(p any) (int, error) {
	return CalculateAgeAt(p, time.Now())
}

// CalculateAgeAt returns now's year minus the birth year.
//
// The subtraction is on calendar years only: a person whose birthday has not
// yet occurred this year is counted with the older age.
//
// p must be a models.Person, a *models.Person or a map[string]any with a
// "birth" entry. Contract violations are reported as errors, never coerced:
//   - ErrMissingParam when p is nil;
//   - ErrNotRecord when p is not one of the record types above;
//   - ErrInvalidBirthDate when the record has no usable birth date.
func CalculateAgeAt(p any, now time.Time) (int, error) {
	var raw any

	switch record := p.(type) {
	case nil:
		return 0, ErrMissingParam
	case models.Person:
		raw = record.Birth
	case *models.Person:
		if record == nil {
			return 0, ErrMissingParam
		}
		raw = record.Birth
	case map[string]any:
		raw = record["birth"]
	default:
		return 0, ErrNotRecord
	}

	birth, parsed := parseBirth(raw)
	if !parsed {
		return 0, ErrInvalidBirthDate
	}

	return now.Year() - birth.Year(), nil
}

// parseBirth converts a raw birth value into a time. The zero time and
// unparseable strings are not usable dates.
func parseBirth(v any) (time.Time, bool) {
	switch value := v.(type) {
	case time.Time:
		return value, !value.IsZero()
	case *time.Time:
		if value == nil {
			return time.Time{}, false
		}
		return *value, !value.IsZero()
	case string:
		for _, layout := range birthDateLayouts {
			if t, err := time.Parse(layout, value); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}
