// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-signup/models"
)

// RootModel wraps the registration page:
// 1) handles global Ctrl+C quit
// 2) toggles the build information window
// 3) delegates all other messages to the page
type RootModel struct {
	page      tea.Model
	buildInfo models.AppBuildInfo

	quitByUser    bool
	showBuildInfo bool
}

// NewRootModel wraps page.
func NewRootModel(page tea.Model, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		page:      page,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.page == nil {
		return nil
	}
	return r.page.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "f1":
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	if r.page == nil {
		return r, nil
	}

	updated, cmd := r.page.Update(msg)
	r.page = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.page == nil {
		return renderPage("TUI", "", "")
	}
	return r.page.View()
}
