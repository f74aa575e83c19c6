// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// registration terminal UI.
//
// Validation error codes are machine tokens; Message turns them into the
// French sentences shown under each field. Keeping them in one place keeps
// the wording consistent between the form and its tests.
package app

import "github.com/MKhiriev/go-signup/models"

const (
	// MsgIdentityCharacters is shown when a name or city contains anything
	// but letters, spaces and hyphens.
	MsgIdentityCharacters = "Seulement lettres, espaces, tirets"

	// MsgIdentityTooShort is shown when a name or city is a single letter.
	MsgIdentityTooShort = "Minimum 2 caractères"

	// MsgForbiddenMarkup is shown when a field contains an HTML tag.
	MsgForbiddenMarkup = "Balises HTML interdites"

	// MsgInvalidEmail is shown for an address without the local@domain.tld
	// shape.
	MsgInvalidEmail = "Email invalide"

	// MsgBirthDateRequired is shown when the birth date is missing or is
	// not a calendar date.
	MsgBirthDateRequired = "Date de naissance requise"

	// MsgUnderage is shown for people younger than 18.
	MsgUnderage = "Âge minimum de 18 ans"

	// MsgPostalCode is shown when the postal code is not five digits.
	MsgPostalCode = "5 chiffres requis"

	// MsgInvalidValue covers codes with no dedicated sentence.
	MsgInvalidValue = "Valeur invalide"
)

// UI strings.
const (
	MsgFormTitle          = "Formulaire d'inscription"
	MsgSubmitLabel        = "S'inscrire"
	MsgRegistrationSaved  = "Inscription réussie !"
	MsgRegistrationFailed = "Échec de l'enregistrement"
	MsgRequiredMark       = " *"
)

var fieldLabels = map[models.Field]string{
	models.FieldLastName:   "Nom",
	models.FieldFirstName:  "Prénom",
	models.FieldEmail:      "Email",
	models.FieldBirthDate:  "Date de naissance",
	models.FieldPostalCode: "Code postal",
	models.FieldCity:       "Ville",
}

var fieldPlaceholders = map[models.Field]string{
	models.FieldLastName:   "Doe",
	models.FieldFirstName:  "Test",
	models.FieldEmail:      "test@test.com",
	models.FieldBirthDate:  "AAAA-MM-JJ",
	models.FieldPostalCode: "75001",
	models.FieldCity:       "Paris",
}

// Message returns the sentence displayed for code, "" for [models.CodeNone].
func Message(code models.ErrorCode) string {
	switch code {
	case models.CodeNone:
		return ""
	case models.CodeInvalidIdentity, models.CodeInvalidType:
		return MsgIdentityCharacters
	case models.CodeIdentityTooShort:
		return MsgIdentityTooShort
	case models.CodeXSSDetected:
		return MsgForbiddenMarkup
	case models.CodeInvalidEmail:
		return MsgInvalidEmail
	case models.CodeInvalidBirthDate:
		return MsgBirthDateRequired
	case models.CodeAgeUnder18:
		return MsgUnderage
	case models.CodeInvalidPostalCode:
		return MsgPostalCode
	default:
		return MsgInvalidValue
	}
}

// Label returns the display label of field.
func Label(field models.Field) string {
	if l, ok := fieldLabels[field]; ok {
		return l
	}
	return field.String()
}

// Placeholder returns the example value shown in an empty field.
func Placeholder(field models.Field) string {
	return fieldPlaceholders[field]
}
