// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import (
	"regexp"
	"unicode/utf8"

	"github.com/MKhiriev/go-signup/models"
)

// identityKeyRegex matches one character allowed while typing an identity
// field.
var identityKeyRegex = regexp.MustCompile(`^[A-Za-zÀ-ÿ\s-]$`)

// AcceptKey reports whether key may be typed into field.
//
// Only identity fields (first name, last name, city) filter keys. A key made
// of exactly one character must be a letter (Latin-1 accents included), a
// space or a hyphen. Longer key names such as "backspace", "left" or "tab"
// are editing controls and always pass.
func AcceptKey(field models.Field, key string) bool {
	if !field.IsIdentity() {
		return true
	}

	if utf8.RuneCountInString(key) != 1 {
		return true
	}

	return identityKeyRegex.MatchString(key)
}
