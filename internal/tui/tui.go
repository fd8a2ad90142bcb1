// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-doc-archive/internal/logger"
	"github.com/MKhiriev/go-doc-archive/internal/service"
	"github.com/MKhiriev/go-doc-archive/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit is returned when the user leaves the program with ctrl+c.
var ErrUserQuit = errors.New("user quit the program")

// TUI runs the two Bubble Tea programs of the client: sign-in and the main
// loop.
type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	// programOptions are appended to every tea.NewProgram call.
	programOptions []tea.ProgramOption
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:       services,
		buildInfo:      buildInfo,
		logger:         logger,
		programOptions: []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// LoginFlow shows the sign-in screen until the user signs in or quits.
func (t *TUI) LoginFlow(ctx context.Context) (models.Session, error) {
	pages := map[string]tea.Model{
		"login": NewLoginModel(ctx, t.services.AuthService),
	}

	result, err := t.run(ctx, NewRootModel(pages, "login", t.buildInfo))
	if err != nil {
		return models.Session{}, err
	}
	if result.quitByUser {
		return models.Session{}, ErrUserQuit
	}

	t.logger.Info().Int64("user_id", result.session.User.UserID).Msg("signed in")
	return result.session, nil
}

// MainLoop runs the Home, Archive, Notifications and Settings screens.
// logout is true when the user logged out from Settings.
func (t *TUI) MainLoop(ctx context.Context, session models.Session) (logout bool, err error) {
	state := newSessionState(session)
	pages := map[string]tea.Model{
		pageMenu:          NewMenuModel(state),
		pageHome:          NewHomeModel(ctx, t.services, state),
		pageArchive:       NewArchiveModel(ctx, t.services, state),
		pageNotifications: NewNotificationsModel(ctx, t.services),
		pageSettings:      NewSettingsModel(ctx, t.services, state),
	}

	result, err := t.run(ctx, NewRootModel(pages, pageHome, t.buildInfo))
	if err != nil {
		return false, err
	}
	if result.logoutErr != nil {
		t.logger.Err(result.logoutErr).Str("func", "TUI.MainLoop").Msg("error clearing session on logout")
	}
	if result.quitByUser {
		return false, ErrUserQuit
	}
	return result.logout, nil
}

func (t *TUI) run(ctx context.Context, root RootModel) (RootModel, error) {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.programOptions...)
	finalModel, err := tea.NewProgram(root, opts...).Run()
	if err != nil {
		return RootModel{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return RootModel{}, tea.ErrProgramKilled
	}
	return result, nil
}
