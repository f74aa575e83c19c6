// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-signup/internal/config"
	"github.com/MKhiriev/go-signup/internal/form"
	"github.com/MKhiriev/go-signup/internal/logger"
	"github.com/MKhiriev/go-signup/internal/store"
	"github.com/MKhiriev/go-signup/internal/tui"
	"github.com/MKhiriev/go-signup/models"
)

// App owns the resources of one signup session.
type App struct {
	store      store.KeyValueStore
	controller *form.Controller
	ui         UI
	logger     *logger.Logger
}

// NewApp opens the configured local store and builds the form controller
// and terminal UI on top of it.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	kv, err := store.NewKeyValueStore(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	controller := newController(kv, cfg.Form, log)

	ui, err := tui.New(controller, buildInfo, log)
	if err != nil {
		kv.Close()
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return newApp(kv, controller, ui, log), nil
}

func newApp(kv store.KeyValueStore, controller *form.Controller, ui UI, log *logger.Logger) *App {
	return &App{
		store:      kv,
		controller: controller,
		ui:         ui,
		logger:     log,
	}
}

func newController(kv store.KeyValueStore, cfg config.ClientForm, log *logger.Logger) *form.Controller {
	return form.NewController(
		store.NewRegistrationStore(kv, cfg.StorageKey, log),
		form.WithConfirmationDelay(cfg.ConfirmationDelay),
		form.WithLogger(log),
	)
}

// Run shows the form until the user quits, then releases the store.
func (a *App) Run(ctx context.Context) (err error) {
	defer func() {
		a.controller.DismissConfirmation()
		err = errors.Join(err, a.store.Close())
	}()

	a.logger.Info().Str("func", "App.Run").Msg("signup form started")

	if err = a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	a.logger.Info().
		Str("func", "App.Run").
		Str("last_submission_id", a.controller.LastSubmissionID()).
		Msg("signup form closed")

	return nil
}
