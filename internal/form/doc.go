// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package form implements the interactive state of the registration form:
// per-field values and error codes, keystroke filtering for identity
// fields, submission to local storage and the transient confirmation that
// follows a successful submit.
//
// A [Controller] is safe for concurrent use. The confirmation is cleared by
// a timer that, by default, fires on its own goroutine.
package form
