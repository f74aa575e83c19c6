// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Field names a single input of the registration form. The string value is
// also the JSON key under which the field is persisted.
type Field string

const (
	FieldFirstName  Field = "firstName"
	FieldLastName   Field = "lastName"
	FieldEmail      Field = "email"
	FieldBirthDate  Field = "birthDate"
	FieldPostalCode Field = "postalCode"
	FieldCity       Field = "city"
)

// Fields lists every form field in display order.
var Fields = []Field{
	FieldLastName,
	FieldFirstName,
	FieldEmail,
	FieldBirthDate,
	FieldPostalCode,
	FieldCity,
}

// IsIdentity reports whether f is validated with the identity rule
// (first name, last name and city).
func (f Field) IsIdentity() bool {
	return f == FieldFirstName || f == FieldLastName || f == FieldCity
}

// IsKnown reports whether f is one of the six form fields.
func (f Field) IsKnown() bool {
	for _, known := range Fields {
		if f == known {
			return true
		}
	}
	return false
}

func (f Field) String() string {
	return string(f)
}

// FormPayload holds the raw values of the registration form.
// BirthDate is an ISO calendar date (YYYY-MM-DD).
type FormPayload struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	BirthDate  string `json:"birthDate"`
	PostalCode string `json:"postalCode"`
	City       string `json:"city"`
}

// Get returns the stored value of field f. Unknown fields read as "".
func (p FormPayload) Get(f Field) string {
	switch f {
	case FieldFirstName:
		return p.FirstName
	case FieldLastName:
		return p.LastName
	case FieldEmail:
		return p.Email
	case FieldBirthDate:
		return p.BirthDate
	case FieldPostalCode:
		return p.PostalCode
	case FieldCity:
		return p.City
	default:
		return ""
	}
}

// Set stores value for field f. Unknown fields are ignored.
func (p *FormPayload) Set(f Field, value string) {
	switch f {
	case FieldFirstName:
		p.FirstName = value
	case FieldLastName:
		p.LastName = value
	case FieldEmail:
		p.Email = value
	case FieldBirthDate:
		p.BirthDate = value
	case FieldPostalCode:
		p.PostalCode = value
	case FieldCity:
		p.City = value
	}
}

// IsComplete reports whether every field holds a non-empty value.
func (p FormPayload) IsComplete() bool {
	for _, f := range Fields {
		if p.Get(f) == "" {
			return false
		}
	}
	return true
}
