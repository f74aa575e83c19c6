// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "strings"

// errorOverlayModel renders a blocking error box. Any of its close keys
// returns to the form.
type errorOverlayModel struct {
	message   string
	closeKeys []string
}

func newErrorOverlay(message string) errorOverlayModel {
	return errorOverlayModel{
		message:   message,
		closeKeys: []string{"enter", "esc"},
	}
}

func (m errorOverlayModel) View() string {
	var b strings.Builder
	b.WriteString(errorStyle.Render("Erreur"))
	b.WriteString("\n\n")
	b.WriteString(m.message)
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(strings.Join(m.closeKeys, " / ") + " : fermer"))
	return overlayBoxStyle.Render(b.String())
}
