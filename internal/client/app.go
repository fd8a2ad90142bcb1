// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-doc-archive/internal/logger"
	"github.com/MKhiriev/go-doc-archive/internal/service"
	"github.com/MKhiriev/go-doc-archive/models"
)

// UI is the part of the terminal UI the application drives.
type UI interface {
	LoginFlow(ctx context.Context) (models.Session, error)
	MainLoop(ctx context.Context, session models.Session) (logout bool, err error)
}

// App runs the sign-in and main loop cycle of the interactive client.
type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app needs services and ui")
	}
	return &App{services: services, ui: ui, logger: logger}, nil
}

// Run restores the saved session or asks the user to sign in, then runs the
// main loop. Logging out returns to the sign-in screen.
func (a *App) Run() error {
	ctx := a.logger.WithContext(context.Background())

	for {
		session, err := a.session(ctx)
		if err != nil {
			return err
		}

		logout, err := a.ui.MainLoop(ctx, session)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}
		a.logger.Info().Int64("user_id", session.User.UserID).Msg("logged out")
	}
}

func (a *App) session(ctx context.Context) (models.Session, error) {
	session, err := a.services.AuthService.Restore(ctx)
	if err == nil {
		a.logger.Debug().Int64("user_id", session.User.UserID).Msg("session restored")
		return session, nil
	}
	if !errors.Is(err, service.ErrNotLoggedIn) {
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}

	return a.ui.LoginFlow(ctx)
}

var _ Client = (*App)(nil)
