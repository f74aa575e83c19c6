// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-signup/internal/logger"
	"github.com/MKhiriev/go-signup/internal/validators"
	"github.com/MKhiriev/go-signup/models"
)

// DefaultConfirmationDelay is how long the confirmation stays visible after
// a successful submit.
const DefaultConfirmationDelay = 3 * time.Second

// State is the lifecycle stage of the form.
type State int

const (
	// StateEditing is the initial state: the user fills in fields.
	StateEditing State = iota
	// StateSubmitted holds while the confirmation is shown.
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateSubmitted:
		return "submitted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Controller holds the values, error codes and confirmation of one
// registration form.
type Controller struct {
	saver     Saver
	validator validators.Validator
	scheduler Scheduler
	now       func() time.Time
	delay     time.Duration
	logger    *logger.Logger

	mu        sync.Mutex
	values    models.FormPayload
	errs      models.FieldErrors
	confirmed bool
	timer     Timer
	lastID    string
}

// Option configures a [Controller].
type Option func(*Controller)

// WithConfirmationDelay sets how long the confirmation stays visible.
// Non-positive values are ignored.
func WithConfirmationDelay(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.delay = d
		}
	}
}

// WithScheduler replaces the timer source used to clear the confirmation.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) {
		if s != nil {
			c.scheduler = s
		}
	}
}

// WithClock replaces the clock the age rule is evaluated against.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger sets the controller logger.
func WithLogger(l *logger.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewController returns a controller in the editing state with every field
// empty and valid. Submitted payloads are handed to saver.
func NewController(saver Saver, opts ...Option) *Controller {
	c := &Controller{
		saver:     saver,
		scheduler: NewScheduler(),
		now:       time.Now,
		delay:     DefaultConfirmationDelay,
		logger:    logger.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}
	c.validator = validators.NewRegistrationValidatorWithClock(c.now)

	return c
}

// Edit stores value for field and re-validates that field only.
func (c *Controller) Edit(field models.Field, value string) {
	if !field.IsKnown() {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.values.Set(field, value)
	c.setError(field, validators.ValidateFieldAt(field, value, c.now()))
}

// Blur re-validates field from its stored value. Repeated calls give the
// same result.
func (c *Controller) Blur(field models.Field) {
	if !field.IsKnown() {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.setError(field, validators.ValidateFieldAt(field, c.values.Get(field), c.now()))
}

// setError stores code for field, logging transitions. c.mu must be held.
func (c *Controller) setError(field models.Field, code models.ErrorCode) {
	if c.errs.Get(field) != code {
		c.logger.Debug().
			Str("func", "Controller.setError").
			Str("field", field.String()).
			Str("code", code.String()).
			Msg("field error changed")
	}
	c.errs.Set(field, code)
}

// Type appends text to field one character at a time. Characters refused
// by [AcceptKey] are dropped. It returns the number of accepted characters.
func (c *Controller) Type(field models.Field, text string) int {
	accepted := 0
	for _, r := range text {
		key := string(r)
		if !AcceptKey(field, key) {
			continue
		}
		c.Edit(field, c.Value(field)+key)
		accepted++
	}
	return accepted
}

// Clear empties field and re-validates it.
func (c *Controller) Clear(field models.Field) {
	c.Edit(field, "")
}

// Value returns the stored value of field.
func (c *Controller) Value(field models.Field) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.values.Get(field)
}

// Error returns the current error code of field.
func (c *Controller) Error(field models.Field) models.ErrorCode {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.errs.Get(field)
}

// Values returns a copy of the form values.
func (c *Controller) Values() models.FormPayload {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.values
}

// Errors returns a copy of the per-field error codes.
func (c *Controller) Errors() models.FieldErrors {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.errs
}

// Submittable reports whether every field is filled and none carries an
// error.
func (c *Controller) Submittable() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.submittable()
}

func (c *Controller) submittable() bool {
	return c.values.IsComplete() && !c.errs.HasErrors()
}

// Submit persists the form when it is submittable, shows the confirmation
// and resets every field. It returns false with a nil error when the form
// is not submittable. A storage failure is returned and leaves the form
// untouched.
func (c *Controller) Submit(ctx context.Context) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.submittable() {
		return false, nil
	}

	payload := c.values

	err := c.validator.Validate(ctx, payload)
	if errors.Is(err, validators.ErrValidationFailed) {
		// the clock moved past a birthday boundary or similar; refresh codes
		for _, f := range models.Fields {
			c.setError(f, validators.ValidateFieldAt(f, payload.Get(f), c.now()))
		}
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("validate registration: %w", err)
	}

	id := newSubmissionID()
	log := c.logger.With().
		Str("submission_id", id).
		Str("key", c.saver.Key()).
		Logger()

	if err = c.saver.Save(ctx, payload); err != nil {
		log.Err(err).Str("func", "Controller.Submit").Msg("failed to save registration")
		return false, err
	}

	c.confirmed = true
	// a still pending timer from an earlier submit is left to fire
	var timer Timer
	timer = c.scheduler.AfterFunc(c.delay, func() { c.expireConfirmation(timer) })
	c.timer = timer
	c.lastID = id
	c.values = models.FormPayload{}
	c.errs.Clear()

	log.Info().Str("func", "Controller.Submit").Msg("registration saved")

	return true, nil
}

// Confirmed reports whether the success confirmation is visible.
func (c *Controller) Confirmed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.confirmed
}

// DismissConfirmation hides the confirmation now and cancels its timer.
func (c *Controller) DismissConfirmation() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.confirmed = false
}

// State returns StateSubmitted while the confirmation is visible and
// StateEditing otherwise.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.confirmed {
		return StateSubmitted
	}
	return StateEditing
}

// LastSubmissionID returns the identifier of the latest successful submit,
// or "" if there was none.
func (c *Controller) LastSubmissionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lastID
}

// ConfirmationDelay returns the configured confirmation lifetime.
func (c *Controller) ConfirmationDelay() time.Duration {
	return c.delay
}

// expireConfirmation hides the confirmation. The handle is forgotten only
// when t is still the current timer, so a later submit stays cancellable.
// The callback takes c.mu, which Submit holds until t is assigned.
func (c *Controller) expireConfirmation(t Timer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.confirmed = false
	if c.timer == t {
		c.timer = nil
	}
}

func newSubmissionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
