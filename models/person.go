// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Person is the minimal record the age helper operates on.
type Person struct {
	// Birth is the date of birth. The zero value is not a usable date.
	Birth time.Time `json:"birth"`
}
