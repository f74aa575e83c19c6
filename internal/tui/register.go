// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-signup/internal/app"
	"github.com/MKhiriev/go-signup/internal/form"
	"github.com/MKhiriev/go-signup/models"
)

const (
	labelWidth       = 22
	postalCodeLength = 5
	// recheckDelay is how long to wait before re-rendering when the
	// confirmation tick arrives before the controller timer has fired.
	recheckDelay = 50 * time.Millisecond
)

// RegisterModel is the Bubble Tea model for the registration screen. It
// renders one text input per form field plus a submit button and keeps a
// [form.Controller] in sync with what the user types.
//
// Keystrokes refused by [form.AcceptKey] never reach the inputs. A field is
// re-validated on every edit and again when focus leaves it.
type RegisterModel struct {
	ctx        context.Context
	controller *form.Controller

	fields     []models.Field
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewRegisterModel creates a [RegisterModel] with inputs in display order.
// The first field receives focus immediately.
func NewRegisterModel(ctx context.Context, controller *form.Controller) *RegisterModel {
	fields := make([]models.Field, len(models.Fields))
	copy(fields, models.Fields)

	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = app.Placeholder(f)
		in.Width = 40
		switch f {
		case models.FieldBirthDate:
			in.CharLimit = len("2006-01-02")
		case models.FieldPostalCode:
			in.CharLimit = postalCodeLength
		}
		in.SetValue(controller.Value(f))
		inputs[i] = in
	}
	inputs[0].Focus()

	return &RegisterModel{
		ctx:        ctx,
		controller: controller,
		fields:     fields,
		inputs:     inputs,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the
// active input.
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - submitDoneMsg: on success resets the inputs and schedules a re-render
//     for when the confirmation expires, on failure opens the error overlay;
//   - confirmationExpiredMsg: re-renders, waiting a little longer if the
//     confirmation is still visible;
//   - tab / down and shift+tab / up: move focus, re-validating the field
//     that loses it;
//   - enter: submits the form;
//   - esc: hides the confirmation (or closes the error overlay).
//
// Other key events are filtered and forwarded to the focused input.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submitDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeStorageError(msg.err)
			return m, nil
		}
		if !msg.saved {
			return m, nil
		}

		m.resetForm()
		return m, expireAfter(m.controller.ConfirmationDelay())
	case confirmationExpiredMsg:
		if m.controller.Confirmed() {
			return m, expireAfter(recheckDelay)
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if !m.onButton() {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *RegisterModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.errMsg != "" {
		if key.Matches(msg, keys.submit, keys.dismiss) {
			m.errMsg = ""
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.next):
		m.focusNext()
		return m, nil
	case key.Matches(msg, keys.prev):
		m.focusPrev()
		return m, nil
	case key.Matches(msg, keys.submit):
		if m.submitting {
			return m, nil
		}
		m.blurField()
		m.submitting = true
		return m, m.cmdSubmit()
	case key.Matches(msg, keys.dismiss):
		m.controller.DismissConfirmation()
		return m, nil
	}

	if m.onButton() {
		return m, nil
	}

	field := m.fields[m.focus]
	filtered, accepted := filterKey(field, msg)
	if !accepted {
		return m, nil
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(filtered)
	if after := m.inputs[m.focus].Value(); after != before {
		m.controller.Edit(field, after)
	}

	return m, cmd
}

// View implements [tea.Model]. Renders each field with its error message,
// the submit button (bracketed when enabled) and the confirmation notice.
func (m *RegisterModel) View() string {
	if m.errMsg != "" {
		return renderPage(app.MsgFormTitle, newErrorOverlay(m.errMsg).View(), "")
	}

	errs := m.controller.Errors()

	var b strings.Builder
	for i, f := range m.fields {
		cursor := "  "
		label := padRight(app.Label(f)+app.MsgRequiredMark, labelWidth)
		if i == m.focus {
			cursor = "> "
			label = focusedStyle.Render(label)
		}

		b.WriteString(cursor)
		b.WriteString(label)
		b.WriteString("│ ")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")

		if code := errs.Get(f); code != models.CodeNone {
			b.WriteString(strings.Repeat(" ", labelWidth+4))
			b.WriteString(errorStyle.Render(app.Message(code)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.submitButton())
	b.WriteString("\n")

	if m.controller.Confirmed() {
		b.WriteString("\n")
		b.WriteString(toastStyle.Render(app.MsgRegistrationSaved))
		b.WriteString("\n")
	}

	return renderPage(app.MsgFormTitle, strings.TrimRight(b.String(), "\n"),
		"tab/↑↓: champ │ enter: s'inscrire │ esc: fermer la notification")
}

func (m *RegisterModel) submitButton() string {
	cursor := "  "
	if m.onButton() {
		cursor = "> "
	}

	switch {
	case m.submitting:
		return cursor + disabledStyle.Render("["+app.MsgSubmitLabel+"...]")
	case m.controller.Submittable():
		label := "[" + app.MsgSubmitLabel + "]"
		if m.onButton() {
			label = focusedStyle.Render(label)
		}
		return cursor + label
	default:
		return cursor + disabledStyle.Render("("+app.MsgSubmitLabel+")")
	}
}

func (m *RegisterModel) cmdSubmit() tea.Cmd {
	ctx := m.ctx
	controller := m.controller

	return func() tea.Msg {
		saved, err := controller.Submit(ctx)
		return submitDoneMsg{saved: saved, err: err}
	}
}

func expireAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return confirmationExpiredMsg{}
	})
}

// filterKey drops the runes of msg that field does not accept. It reports
// false when nothing is left to type.
func filterKey(field models.Field, msg tea.KeyMsg) (tea.KeyMsg, bool) {
	if msg.Type != tea.KeyRunes && msg.Type != tea.KeySpace {
		return msg, true
	}

	runes := make([]rune, 0, len(msg.Runes))
	for _, r := range msg.Runes {
		if form.AcceptKey(field, string(r)) {
			runes = append(runes, r)
		}
	}
	if len(runes) == 0 {
		return msg, false
	}

	msg.Runes = runes
	return msg, true
}

func (m *RegisterModel) onButton() bool {
	return m.focus == len(m.inputs)
}

func (m *RegisterModel) blurField() {
	if !m.onButton() {
		m.controller.Blur(m.fields[m.focus])
	}
}

func (m *RegisterModel) resetForm() {
	for i, f := range m.fields {
		m.inputs[i].SetValue(m.controller.Value(f))
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[m.focus].Focus()
}

// setFocus moves focus to input next, or to the submit button when next
// equals the number of inputs.
func (m *RegisterModel) setFocus(next int) {
	m.blurField()
	if !m.onButton() {
		m.inputs[m.focus].Blur()
	}

	m.focus = next
	if !m.onButton() {
		m.inputs[m.focus].Focus()
	}
}

func (m *RegisterModel) focusNext() {
	m.setFocus((m.focus + 1) % (len(m.inputs) + 1))
}

func (m *RegisterModel) focusPrev() {
	m.setFocus((m.focus - 1 + len(m.inputs) + 1) % (len(m.inputs) + 1))
}
