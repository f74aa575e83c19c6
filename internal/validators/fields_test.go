// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-signup/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// ValidateIdentity
// ---------------------------------------------------------------------------

func TestValidateIdentity(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  Result
	}{
		{name: "simple name", input: "Doe", want: Result{Valid: true}},
		{name: "accents hyphen and space", input: "Jean-Pierre Éléonore", want: Result{Valid: true}},
		{name: "lowercase accents", input: "françoise", want: Result{Valid: true}},
		{name: "two letters", input: "Li", want: Result{Valid: true}},
		{name: "not a string", input: 42, want: Result{ErrorCode: models.CodeInvalidType}},
		{name: "nil", input: nil, want: Result{ErrorCode: models.CodeInvalidType}},
		{name: "html tag", input: "<script>alert(1)</script>", want: Result{ErrorCode: models.CodeXSSDetected}},
		{name: "tag inside letters", input: "Jean<b>Doe", want: Result{ErrorCode: models.CodeXSSDetected}},
		{name: "at sign", input: "Jean@Doe", want: Result{ErrorCode: models.CodeInvalidIdentity}},
		{name: "digits", input: "Test123", want: Result{ErrorCode: models.CodeInvalidIdentity}},
		{name: "multiplication sign", input: "Jean×Doe", want: Result{ErrorCode: models.CodeInvalidIdentity}},
		{name: "lone angle bracket", input: "a<b", want: Result{ErrorCode: models.CodeInvalidIdentity}},
		{name: "empty", input: "", want: Result{ErrorCode: models.CodeInvalidIdentity}},
		{name: "single letter", input: "A", want: Result{ErrorCode: models.CodeIdentityTooShort}},
		{name: "single accented letter", input: "É", want: Result{ErrorCode: models.CodeIdentityTooShort}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateIdentity(tt.input))
		})
	}
}

func TestValidateIdentity_XSSCheckedBeforeCharacterClass(t *testing.T) {
	// digits would fail the character class, the tag must win
	r := ValidateIdentity("123<img src=x>")
	assert.False(t, r.Valid)
	assert.Equal(t, models.CodeXSSDetected, r.ErrorCode)
}

// ---------------------------------------------------------------------------
// ValidateEmail
// ---------------------------------------------------------------------------

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  Result
	}{
		{name: "valid", input: "test@example.com", want: Result{Valid: true}},
		{name: "dotted local part", input: "admin.text@test.com", want: Result{Valid: true}},
		{name: "sub domain", input: "a@b.c.d", want: Result{Valid: true}},
		{name: "no at", input: "test.com", want: Result{ErrorCode: models.CodeInvalidEmail}},
		{name: "bare word", input: "invalid-email", want: Result{ErrorCode: models.CodeInvalidEmail}},
		{name: "no tld", input: "test@example", want: Result{ErrorCode: models.CodeInvalidEmail}},
		{name: "whitespace", input: "te st@example.com", want: Result{ErrorCode: models.CodeInvalidEmail}},
		{name: "double at", input: "a@@b.com", want: Result{ErrorCode: models.CodeInvalidEmail}},
		{name: "empty", input: "", want: Result{ErrorCode: models.CodeInvalidEmail}},
		{name: "not a string", input: []byte("a@b.c"), want: Result{ErrorCode: models.CodeInvalidType}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateEmail(tt.input))
		})
	}
}

// ---------------------------------------------------------------------------
// ValidatePostalCode
// ---------------------------------------------------------------------------

func TestValidatePostalCode(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  Result
	}{
		{name: "valid", input: "69001", want: Result{Valid: true}},
		{name: "leading zero", input: "01000", want: Result{Valid: true}},
		{name: "four digits", input: "6900", want: Result{ErrorCode: models.CodeInvalidPostalCode}},
		{name: "six digits", input: "690010", want: Result{ErrorCode: models.CodeInvalidPostalCode}},
		{name: "letter", input: "6900A", want: Result{ErrorCode: models.CodeInvalidPostalCode}},
		{name: "letter O instead of zero", input: "0100O", want: Result{ErrorCode: models.CodeInvalidPostalCode}},
		{name: "empty", input: "", want: Result{ErrorCode: models.CodeInvalidPostalCode}},
		{name: "integer", input: 69001, want: Result{ErrorCode: models.CodeInvalidType}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidatePostalCode(tt.input))
		})
	}
}

// ---------------------------------------------------------------------------
// ValidateAge
// ---------------------------------------------------------------------------

func TestValidateAge_Accepts18(t *testing.T) {
	now := time.Now()
	birth := time.Date(now.Year()-18, now.Month(), now.Day(), 0, 0, 0, 0, time.Local)

	r := ValidateAge(birth)
	assert.True(t, r.Valid)
	assert.Empty(t, r.ErrorCode)
}

func TestValidateAge_RejectsUnder18(t *testing.T) {
	now := time.Now()
	birth := time.Date(now.Year()-17, now.Month(), now.Day(), 0, 0, 0, 0, time.Local)

	r := ValidateAge(birth)
	assert.False(t, r.Valid)
	assert.Equal(t, models.CodeAgeUnder18, r.ErrorCode)
}

func TestValidateAgeAt(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input any
		want  Result
	}{
		{name: "iso string adult", input: "1995-01-01", want: Result{Valid: true}},
		{name: "rfc3339 string", input: "2000-06-15T10:00:00Z", want: Result{Valid: true}},
		{name: "pointer", input: ptrTime(time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)), want: Result{Valid: true}},
		{name: "birthday later this year still counts", input: "2008-12-31", want: Result{Valid: true}},
		{name: "minor", input: "2009-01-01", want: Result{ErrorCode: models.CodeAgeUnder18}},
		{name: "garbage string", input: "invalid", want: Result{ErrorCode: models.CodeInvalidBirthDate}},
		{name: "impossible date", input: "2001-02-30", want: Result{ErrorCode: models.CodeInvalidBirthDate}},
		{name: "empty string", input: "", want: Result{ErrorCode: models.CodeInvalidBirthDate}},
		{name: "zero time", input: time.Time{}, want: Result{ErrorCode: models.CodeInvalidBirthDate}},
		{name: "nil pointer", input: (*time.Time)(nil), want: Result{ErrorCode: models.CodeInvalidBirthDate}},
		{name: "nil", input: nil, want: Result{ErrorCode: models.CodeInvalidBirthDate}},
		{name: "number", input: 1995, want: Result{ErrorCode: models.CodeInvalidBirthDate}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateAgeAt(tt.input, now))
		})
	}
}

func TestValidateBirthDate_IsValidateAge(t *testing.T) {
	assert.Equal(t, ValidateAge("1980-05-05"), ValidateBirthDate("1980-05-05"))
	assert.Equal(t, ValidateAge("nope"), ValidateBirthDate("nope"))
}

// ---------------------------------------------------------------------------
// CalculateAge
// ---------------------------------------------------------------------------

func TestCalculateAge_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		wantErr error
	}{
		{name: "missing param", input: nil, wantErr: ErrMissingParam},
		{name: "nil person pointer", input: (*models.Person)(nil), wantErr: ErrMissingParam},
		{name: "string is not a record", input: "string", wantErr: ErrNotRecord},
		{name: "int is not a record", input: 12, wantErr: ErrNotRecord},
		{name: "no birth property", input: map[string]any{}, wantErr: ErrInvalidBirthDate},
		{name: "nil birth", input: map[string]any{"birth": nil}, wantErr: ErrInvalidBirthDate},
		{name: "string birth", input: map[string]any{"birth": "string"}, wantErr: ErrInvalidBirthDate},
		{name: "number birth", input: map[string]any{"birth": 1}, wantErr: ErrInvalidBirthDate},
		{name: "slice birth", input: map[string]any{"birth": []any{}}, wantErr: ErrInvalidBirthDate},
		{name: "zero person", input: models.Person{}, wantErr: ErrInvalidBirthDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			age, err := CalculateAge(tt.input)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, age)
		})
	}
}

func TestCalculateAge_MessagesMatchContract(t *testing.T) {
	_, err := CalculateAge(nil)
	assert.EqualError(t, err, "missing param p")

	_, err = CalculateAge(map[string]any{})
	assert.EqualError(t, err, "invalid birth date")
}

func TestCalculateAgeAt_CalendarYearSubtraction(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	// born on the last day of 2006: 19 elapsed years, but 20 calendar years
	age, err := CalculateAgeAt(models.Person{Birth: time.Date(2006, time.December, 31, 0, 0, 0, 0, time.UTC)}, now)
	require.NoError(t, err)
	assert.Equal(t, 20, age)

	age, err = CalculateAgeAt(&models.Person{Birth: time.Date(2006, time.January, 1, 0, 0, 0, 0, time.UTC)}, now)
	require.NoError(t, err)
	assert.Equal(t, 20, age)

	age, err = CalculateAgeAt(map[string]any{"birth": "2006-07-14"}, now)
	require.NoError(t, err)
	assert.Equal(t, 20, age)
}

func TestCalculateAge_TwentyYears(t *testing.T) {
	now := time.Now()
	age, err := CalculateAge(models.Person{Birth: now.AddDate(-20, 0, 0)})
	require.NoError(t, err)
	assert.Equal(t, 20, age)
}

func ptrTime(t time.Time) *time.Time { return &t }
