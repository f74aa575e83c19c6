// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-signup/internal/form"
	"github.com/MKhiriev/go-signup/internal/logger"
	"github.com/MKhiriev/go-signup/models"
)

// TUI runs the registration form in the terminal.
type TUI struct {
	controller *form.Controller
	buildInfo  models.AppBuildInfo
	logger     *logger.Logger
}

func New(controller *form.Controller, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	return &TUI{
		controller: controller,
		buildInfo:  buildInfo,
		logger:     log,
	}, nil
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(NewRegisterModel(ctx, t.controller), t.buildInfo)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}

	if result, ok := finalModel.(RootModel); ok && result.quitByUser {
		t.logger.Info().Str("func", "TUI.Run").Msg("user quit")
	}

	return nil
}
