// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import (
	"context"
	"time"

	"github.com/MKhiriev/go-signup/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/form_mock.go -package=mock

// Saver persists a submitted registration payload.
type Saver interface {
	// Save stores payload, replacing any previous one.
	Save(ctx context.Context, payload models.FormPayload) error
	// Key returns the storage key payloads are written under.
	Key() string
}

// Scheduler runs f once after d has elapsed.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is the handle of a scheduled function.
type Timer interface {
	// Stop prevents the function from running. It reports whether the call
	// stopped it, false if it already ran or was stopped.
	Stop() bool
}
