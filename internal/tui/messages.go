// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

// submitDoneMsg carries the outcome of a form submission.
type submitDoneMsg struct {
	saved bool
	err   error
}

// confirmationExpiredMsg triggers a re-render once the confirmation delay
// has elapsed.
type confirmationExpiredMsg struct{}
