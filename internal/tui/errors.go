// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-signup/internal/app"
)

// humanizeStorageError turns a local storage failure into a short French
// sentence for the error overlay.
func humanizeStorageError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	switch {
	case strings.Contains(s, "database is locked"):
		return "Stockage local occupé, réessayez"
	case strings.Contains(s, "permission denied") ||
		strings.Contains(s, "read-only") ||
		strings.Contains(s, "no space left"):
		return app.MsgRegistrationFailed + " : stockage local inaccessible"
	}

	return app.MsgRegistrationFailed + " : " + err.Error()
}
